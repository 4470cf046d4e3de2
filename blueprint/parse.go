package blueprint

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	headerRe   = regexp.MustCompile(`Blueprint\s+(-?\d+)\s*:`)
	oreBotRe   = regexp.MustCompile(`Each\s+ore\s+robot\s+costs\s+(-?\d+)\s+ore\s*\.`)
	clayBotRe  = regexp.MustCompile(`Each\s+clay\s+robot\s+costs\s+(-?\d+)\s+ore\s*\.`)
	obsBotRe   = regexp.MustCompile(`Each\s+obsidian\s+robot\s+costs\s+(-?\d+)\s+ore\s+and\s+(-?\d+)\s+clay\s*\.`)
	geodeBotRe = regexp.MustCompile(`Each\s+geode\s+robot\s+costs\s+(-?\d+)\s+ore\s+and\s+(-?\d+)\s+obsidian\s*\.`)
)

// ParseLine parses exactly one blueprint record.
//
// Errors: ErrMalformedBlueprint naming the missing cost group, or wrapping
// ErrNegativeCost when a quantity is below zero.
func ParseLine(line string) (Blueprint, error) {
	locs := headerRe.FindAllStringSubmatchIndex(line, -1)
	if len(locs) != 1 || strings.TrimSpace(line[:locs[0][0]]) != "" {
		return Blueprint{}, fmt.Errorf("%w: expected a single %q header", ErrMalformedBlueprint, "Blueprint N:")
	}
	id, err := atoi(line[locs[0][2]:locs[0][3]], "id")
	if err != nil {
		return Blueprint{}, err
	}

	return parseBody(id, line[locs[0][1]:])
}

// ParseText reads every blueprint record from r. Records start at a
// "Blueprint N:" header and may span several lines.
// Errors carry the 1-based record number.
func ParseText(r io.Reader) ([]Blueprint, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := string(raw)

	locs := headerRe.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		if strings.TrimSpace(text) == "" {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("%w: no %q header found", ErrMalformedBlueprint, "Blueprint N:")
	}
	if strings.TrimSpace(text[:locs[0][0]]) != "" {
		return nil, fmt.Errorf("%w: unexpected text before first record", ErrMalformedBlueprint)
	}

	out := make([]Blueprint, 0, len(locs))
	var (
		i        int
		end      int
		id       int
		bp       Blueprint
		parseErr error
	)
	for i = range locs {
		end = len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		id, parseErr = atoi(text[locs[i][2]:locs[i][3]], "id")
		if parseErr == nil {
			bp, parseErr = parseBody(id, text[locs[i][1]:end])
		}
		if parseErr != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, parseErr)
		}
		out = append(out, bp)
	}

	return out, nil
}

// parseBody extracts the four cost groups that follow a header.
func parseBody(id int, body string) (Blueprint, error) {
	groups := [...]struct {
		name string
		re   *regexp.Regexp
	}{
		{"ore robot", oreBotRe},
		{"clay robot", clayBotRe},
		{"obsidian robot", obsBotRe},
		{"geode robot", geodeBotRe},
	}

	var q []Quantity
	for _, g := range groups {
		m := g.re.FindStringSubmatch(body)
		if m == nil {
			return Blueprint{}, fmt.Errorf("%w: blueprint %d: missing %s cost", ErrMalformedBlueprint, id, g.name)
		}
		for _, s := range m[1:] {
			n, err := atoi(s, g.name)
			if err != nil {
				return Blueprint{}, err
			}
			q = append(q, n)
		}
	}

	return New(id, q[0], q[1], q[2], q[3], q[4], q[5])
}

func atoi(s, field string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrMalformedBlueprint, field, s)
	}

	return n, nil
}
