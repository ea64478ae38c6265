package livesvc

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/cel-go/cel"
)

// celFilter wraps a compiled CEL program evaluated per record before
// delivery. When disabled, Eval always returns true.
type celFilter struct {
	prog    cel.Program
	enabled bool
}

func newCELFilter(expr string) (celFilter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return celFilter{enabled: false}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("topic", cel.StringType),
		cel.Variable("partition", cel.IntType),
		cel.Variable("offset", cel.IntType),
		cel.Variable("ts_ms", cel.IntType),
		cel.Variable("size", cel.IntType),
		cel.Variable("text", cel.StringType),
		// Expose parsed JSON payload (map/list/values) for field filtering
		cel.Variable("json", cel.DynType),
		// Current time in ms for windowed filters
		cel.Variable("now_ms", cel.IntType),
	)
	if err != nil {
		return celFilter{}, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return celFilter{}, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return celFilter{}, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return celFilter{}, err
	}
	return celFilter{prog: prog, enabled: true}, nil
}

// Eval evaluates the compiled expression against a record. When disabled,
// returns true. Evaluation errors fail closed.
func (f celFilter) Eval(rec Record) bool {
	if !f.enabled {
		return true
	}
	var jsonObj any
	_ = json.Unmarshal([]byte(rec.Value), &jsonObj)
	out, _, err := f.prog.Eval(map[string]any{
		"topic":     rec.Topic,
		"partition": int64(rec.Partition),
		"offset":    rec.Offset,
		"ts_ms":     rec.Timestamp,
		"size":      int64(len(rec.Value)),
		"text":      rec.Value,
		"json":      jsonObj,
		"now_ms":    time.Now().UnixMilli(),
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}
