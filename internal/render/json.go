package render

import (
	"encoding/json"

	"github.com/joss/animal-age/internal/convert"
)

// JSON renders results as indented JSON: a single object for one pet, an
// ordered array for several. Field names are a compatibility surface; they
// are fixed by the struct tags on convert.Result.
func (r *Renderer) JSON(results []convert.Result) (string, error) {
	var (
		b   []byte
		err error
	)
	if len(results) == 1 {
		b, err = json.MarshalIndent(results[0], "", "  ")
	} else {
		b, err = json.MarshalIndent(results, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}
