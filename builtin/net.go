package builtin

import (
	"io"
	"net/http"
	"time"

	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/function"
	"github.com/lll-lang/lll/object"
)

// netBuiltins registers http_get, the host-appropriate synchronous
// implementation spec.md §9's open question asks for — `(string URL) →
// string body` — using net/http instead of the original's child-process
// spawning (see DESIGN.md / SPEC_FULL.md DOMAIN STACK).
func netBuiltins() map[string]*function.Builtin {
	client := &http.Client{Timeout: 10 * time.Second}

	return map[string]*function.Builtin{
		"http_get": {Name: "http_get", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("http_get", args, 1); errObj != nil {
				return errObj
			}
			url, errObj := asString("http_get", args[0])
			if errObj != nil {
				return errObj
			}
			resp, err := client.Get(url.Value)
			if err != nil {
				return errf("http_get: %s", err.Error())
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return errf("http_get: %s", err.Error())
			}
			return &object.String{Value: string(body)}
		}},
	}
}
