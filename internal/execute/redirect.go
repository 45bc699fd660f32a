package execute

import (
	"fmt"
	"os"

	"tinysh/internal/parser"
)

// redirects holds the opened child-side streams. A nil field means the
// shell's own stream is inherited.
type redirects struct {
	in  *os.File
	out *os.File
}

// openRedirects resolves and opens the files a command named. A background
// command with no explicit path in a direction is pointed at the null
// device instead, so unattended children never touch the terminal. The
// returned error text is the user-facing diagnostic.
func openRedirects(cmd *parser.Command) (*redirects, error) {
	r := &redirects{}

	in := cmd.InputPath
	if in == "" && cmd.Background {
		in = os.DevNull
	}
	if in != "" {
		f, err := os.Open(in)
		if err != nil {
			return nil, fmt.Errorf("cannot open %s for input", in)
		}
		r.in = f
	}

	out := cmd.OutputPath
	if out == "" && cmd.Background {
		out = os.DevNull
	}
	if out != "" {
		f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("cannot open %s for output", out)
		}
		r.out = f
	}

	return r, nil
}

// stdio is the child's descriptor table: fds 0 and 1 from the redirects,
// stderr always inherited.
func (r *redirects) stdio() []uintptr {
	in := os.Stdin
	if r.in != nil {
		in = r.in
	}
	out := os.Stdout
	if r.out != nil {
		out = r.out
	}
	return []uintptr{in.Fd(), out.Fd(), os.Stderr.Fd()}
}

// Close releases whichever descriptors were opened. The child holds its own
// copies after the fork.
func (r *redirects) Close() {
	if r.in != nil {
		_ = r.in.Close()
	}
	if r.out != nil {
		_ = r.out.Close()
	}
}
