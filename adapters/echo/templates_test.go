package wireworkecho

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/pthm/wirework"
)

var titleTemplate wirework.Template = func(data map[string]any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h1>%v</h1>", data["title"])
		return err
	})
}
