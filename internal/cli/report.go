package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

// stderrReporter prints errors the moment they are reported and remembers
// them so Run does not print them a second time.
type stderrReporter struct {
	w io.Writer

	mu   sync.Mutex
	seen []error
}

var _ types.Reporter = (*stderrReporter)(nil)

func (r *stderrReporter) Report(_ context.Context, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, err)
	fmt.Fprintln(r.w, "Error:", err)
}

func (r *stderrReporter) reported(err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.seen {
		if e == err {
			return true
		}
	}
	return false
}
