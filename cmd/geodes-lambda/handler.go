// Command geodes-lambda serves the evaluator behind an AWS Lambda function URL.
//
// Request body:
//
//	{"mode": "quality", "input": "Blueprint 1: Each ore robot costs ..."}
//	{"mode": "product", "blueprints": [{"id": 1, "ore": 4, ...}], "horizon": 32, "policy": "exhaustive"}
//
// "input" (text format) and "blueprints" (JSON format) are alternatives.
// "horizon" and "policy" are optional; a horizon must be an integer in
// [0, geode.MaxHorizon].
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/katalvlaran/geodes/blueprint"
	"github.com/katalvlaran/geodes/evaluate"
	"github.com/katalvlaran/geodes/geode"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type server struct {
	logger *zap.Logger
}

func (s *server) handle(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(http.StatusBadRequest, "invalid base64 body")
		}
		body = string(decoded)
	}
	if !gjson.Valid(body) {
		return errResp(http.StatusBadRequest, "invalid JSON body")
	}
	req := gjson.Parse(body)

	var (
		bps []blueprint.Blueprint
		err error
	)
	switch {
	case req.Get("blueprints").Exists():
		bps, err = blueprint.ParseJSON([]byte(req.Get("blueprints").Raw))
	case req.Get("input").Exists():
		bps, err = blueprint.ParseText(strings.NewReader(req.Get("input").String()))
	default:
		return errResp(http.StatusBadRequest, "missing input or blueprints field")
	}
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}

	policy, err := geode.PolicyByName(req.Get("policy").String())
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}
	ev := evaluate.New(
		evaluate.WithLogger(s.logger),
		evaluate.WithSearchOptions(geode.WithPolicy(policy)),
	)

	var rep evaluate.Report
	mode := req.Get("mode").String()
	switch mode {
	case "", "quality":
		horizon, herr := horizonField(req, evaluate.QualityHorizon)
		if herr != nil {
			return errResp(http.StatusBadRequest, herr.Error())
		}
		rep, err = ev.QualitySumAt(ctx, bps, horizon)
	case "product":
		horizon, herr := horizonField(req, evaluate.ProductHorizon)
		if herr != nil {
			return errResp(http.StatusBadRequest, herr.Error())
		}
		rep, err = ev.TopProductAt(ctx, bps, horizon, evaluate.ProductCount)
	default:
		return errResp(http.StatusBadRequest, "unknown mode "+mode)
	}
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			status = http.StatusGatewayTimeout
		}
		return errResp(status, err.Error())
	}

	respJSON, _ := json.Marshal(rep)
	return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: jsonHeader, Body: string(respJSON)}, nil
}

// horizonField reads the optional "horizon" field. It must be an integral
// JSON number in [0, geode.MaxHorizon].
func horizonField(req gjson.Result, def int) (int, error) {
	h := req.Get("horizon")
	if !h.Exists() {
		return def, nil
	}
	if h.Type != gjson.Number {
		return 0, fmt.Errorf("horizon: want an integer, got %s", h.Raw)
	}
	f := h.Float()
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("horizon: want an integer, got %s", h.Raw)
	}
	if f < 0 || f > geode.MaxHorizon {
		return 0, fmt.Errorf("horizon: %s outside [0, %d]", h.Raw, geode.MaxHorizon)
	}

	return int(f), nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
