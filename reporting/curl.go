package reporting

import (
	"io"
	"net/http"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/alessio/shellescape"
)

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// CurlCommand renders req as a shell command that repeats it. Headers are sorted and the
// Authorization value is masked. Bodies that are not valid UTF-8 are replaced by a
// placeholder.
func CurlCommand(req *http.Request) string {
	if req == nil {
		return ""
	}
	var b commandBuilder
	b.add("curl", "-X", req.Method, req.URL.String())

	names := make([]string, 0, len(req.Header))
	for name := range req.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range req.Header[name] {
			if strings.EqualFold(name, "Authorization") {
				value = "Bearer ***"
			}
			b.add("-H", name+": "+value)
		}
	}

	if req.GetBody != nil {
		if body, err := req.GetBody(); err == nil {
			data, _ := io.ReadAll(body)
			body.Close()
			if len(data) > 0 {
				if utf8.Valid(data) {
					b.add("--data-binary", string(data))
				} else {
					b.add("--data-binary", "<binary body omitted>")
				}
			}
		}
	}
	return b.String()
}
