package variant

import (
	"fmt"
	"sync"

	"github.com/longbridgeapp/opencc"
)

// OpenCC is a Converter backed by a pair of OpenCC instances, one per
// direction. Both instances are constructed together because a listing that
// needs one direction always needs the other within the same pass.
type OpenCC struct {
	t2s *opencc.OpenCC
	s2t *opencc.OpenCC
}

// NewOpenCC constructs both conversion directions eagerly.
func NewOpenCC() (*OpenCC, error) {
	t2s, err := opencc.New("t2s")
	if err != nil {
		return nil, fmt.Errorf("opencc t2s: %w", err)
	}
	s2t, err := opencc.New("s2t")
	if err != nil {
		return nil, fmt.Errorf("opencc s2t: %w", err)
	}
	return &OpenCC{t2s: t2s, s2t: s2t}, nil
}

// ToSimplified converts Traditional text to Simplified.
func (c *OpenCC) ToSimplified(text string) (string, error) {
	return c.t2s.Convert(text)
}

// ToTraditional converts Simplified text to Traditional.
func (c *OpenCC) ToTraditional(text string) (string, error) {
	return c.s2t.Convert(text)
}

var (
	defaultOnce sync.Once
	defaultConv *OpenCC
	defaultErr  error
)

// Default returns the process-wide OpenCC converter pair, constructing it
// on first call. Construction happens exactly once even under concurrent
// first use; a construction error is sticky and returned to every caller.
func Default() (Converter, error) {
	defaultOnce.Do(func() {
		defaultConv, defaultErr = NewOpenCC()
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultConv, nil
}
