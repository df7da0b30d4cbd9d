// Package vercel renders the deployment manifest for the entry function. The
// host bundles files by directory, so the manifest is what guarantees the
// backend directory ships next to the entry file.
package vercel

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	pongo2 "github.com/flosch/pongo2/v6"

	"github.com/awantoch/edgebridge/constants"
)

const manifestTemplate = `{
  "functions": {
    "{{ function|safe }}": {
{% if runtime %}      "runtime": "{{ runtime|safe }}",
{% endif %}      "maxDuration": {{ max_duration }},
      "includeFiles": "{{ include_files|safe }}"
    }
  },
  "rewrites": [
    { "source": "/(.*)", "destination": "/{{ function_route|safe }}" }
  ]
}
`

var (
	tpl = pongo2.Must(pongo2.FromString(manifestTemplate))

	// versionedRuntime matches "name@1.2.3" and "@scope/name@1.2.3".
	versionedRuntime = regexp.MustCompile(`^(@[a-z0-9][a-z0-9._-]*/)?[a-z0-9][a-z0-9._-]*@\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?$`)
)

// ErrRuntimeVersion is returned for a runtime without a pinned version.
var ErrRuntimeVersion = errors.New("runtime must be name@x.y.z")

// Options describe the entry function being deployed.
type Options struct {
	// Function is the entry file relative to the project root.
	Function string
	// BackendDir is the sibling directory bundled with the function.
	BackendDir string
	// Runtime names a community runtime as name@version. Empty uses the
	// host's built-in Go runtime and leaves the field out of the manifest.
	Runtime string
	// MaxDuration is the per-invocation limit in seconds.
	MaxDuration int
}

func (o Options) withDefaults() Options {
	if o.Function == "" {
		o.Function = constants.EntryFile
	}
	if o.BackendDir == "" {
		o.BackendDir = constants.BackendDirName
	}
	if o.MaxDuration <= 0 {
		o.MaxDuration = constants.DefaultVercelMaxDuration
	}
	return o
}

// Render produces vercel.json for opts. The output is checked to be valid JSON.
func Render(opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	for name, v := range map[string]string{"function": opts.Function, "backend dir": opts.BackendDir} {
		if strings.ContainsAny(v, "\"\\\n") {
			return nil, fmt.Errorf("%s contains characters not allowed in a path: %q", name, v)
		}
	}
	if opts.Runtime != "" && !versionedRuntime.MatchString(opts.Runtime) {
		return nil, fmt.Errorf("%w: %q", ErrRuntimeVersion, opts.Runtime)
	}
	backend := strings.Trim(path.Clean(filepathToSlash(opts.BackendDir)), "/")
	route := strings.TrimSuffix(path.Clean(filepathToSlash(opts.Function)), path.Ext(opts.Function))

	out, err := tpl.Execute(pongo2.Context{
		"function":       path.Clean(filepathToSlash(opts.Function)),
		"runtime":        opts.Runtime,
		"max_duration":   opts.MaxDuration,
		"include_files":  backend + "/**",
		"function_route": route,
	})
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(out), "", "  "); err != nil {
		return nil, fmt.Errorf("rendered manifest is not valid JSON: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
