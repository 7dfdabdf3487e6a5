package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/detectua/internal/api"
	"github.com/dmitrymomot/detectua/pkg/useragent"
)

var errUnknownFormat = errors.New("unknown output format")

// maxLineBytes bounds a single user agent read from stdin.
const maxLineBytes = 64 * 1024

func parse(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "text", "output format: json, yaml or text")
	platform := fs.String("platform", "", "navigator.platform reported by the client, e.g. MacIntel")
	touch := fs.Int("touch", 0, "navigator.maxTouchPoints reported by the client")
	msStream := fs.Bool("msstream", false, "client exposes window.MSStream")
	if err := fs.Parse(args); err != nil {
		return err
	}

	emit, flush, err := emitter(*format, stdout)
	if err != nil {
		return err
	}
	hints := useragent.Navigator{Platform: *platform, MaxTouchPoints: *touch, MSStream: *msStream}
	if err := classifyAll(fs.Args(), stdin, hints, emit); err != nil {
		return err
	}
	return flush()
}

// classifyAll classifies uas, or every non-blank stdin line when uas is
// empty. hints supplies the navigator fields other than the user agent.
func classifyAll(uas []string, stdin io.Reader, hints useragent.Navigator, emit func(api.Detection) error) error {
	classify := func(ua string) error {
		n := hints
		n.UserAgent = ua
		return emit(api.NewDetection(useragent.New(useragent.WithNavigator(n))))
	}

	if len(uas) > 0 {
		for _, ua := range uas {
			if err := classify(ua); err != nil {
				return err
			}
		}
		return nil
	}

	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		ua := strings.TrimSpace(sc.Text())
		if ua == "" {
			continue
		}
		if err := classify(ua); err != nil {
			return err
		}
	}
	return sc.Err()
}

// emitter returns a function writing one detection in the given format and
// a function flushing buffered output. JSON is written one object per line
// and YAML as a document stream.
func emitter(format string, w io.Writer) (emit func(api.Detection) error, flush func() error, err error) {
	noop := func() error { return nil }
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		return func(d api.Detection) error { return enc.Encode(d) }, noop, nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return func(d api.Detection) error { return enc.Encode(d) }, enc.Close, nil
	case "text":
		return func(d api.Detection) error {
			_, err := fmt.Fprintf(w, "%s\t%s\n", d.Summary, d.UserAgent)
			return err
		}, noop, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}
