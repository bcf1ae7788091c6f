package config

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// ScaffoldConfig renders the starter config YAML.
func ScaffoldConfig(opts ScaffoldOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `# quizgen configuration
api_url: %s
# request_timeout: "10s"
ui:
  mode: %s
  no_color: false
log:
  level: %s
  format: %s
serve:
  addr: %s
`,
			strconv.Quote(opts.APIURL),
			strconv.Quote(opts.UIMode),
			strconv.Quote(DefaultLogLevel),
			strconv.Quote(DefaultLogFormat),
			strconv.Quote(opts.ServeAddr),
		)
		return err
	})
}

// renderScaffoldConfig builds the scaffold YAML from the template component.
func renderScaffoldConfig(opts ScaffoldOptions) (string, error) {
	var builder strings.Builder
	if err := ScaffoldConfig(opts).Render(context.Background(), &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
