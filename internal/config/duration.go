package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/iw2rmb/ghostwrite/internal/encoding/jsonx"
)

// Duration accepts either a Go duration string ("500ms") or integer
// nanoseconds in JSON.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := jsonx.Unmarshal(b, &str); err != nil {
			return err
		}
		v, err := time.ParseDuration(str)
		if err != nil {
			return fmt.Errorf("duration %q: %w", str, err)
		}
		d.Duration = v
		return nil
	}

	var n int64
	if err := jsonx.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("duration %s: %w", s, err)
	}
	d.Duration = time.Duration(n)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return jsonx.Marshal(d.String())
}
