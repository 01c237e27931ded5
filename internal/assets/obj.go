package assets

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Faultbox/pathway/pkg/math"
)

// ReadOBJBounds scans a Wavefront OBJ stream and returns the bounds of its
// vertex positions. Everything other than "v" records is ignored.
func ReadOBJBounds(r io.Reader) (Bounds, int, error) {
	b := EmptyBounds()
	count := 0

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] != "v" {
			continue
		}
		if len(fields) < 4 {
			return b, count, fmt.Errorf("line %d: vertex needs 3 coordinates", line)
		}

		var xyz [3]float32
		for i := range xyz {
			f, err := strconv.ParseFloat(fields[i+1], 32)
			if err != nil {
				return b, count, fmt.Errorf("line %d: %w", line, err)
			}
			xyz[i] = float32(f)
		}
		b.Add(math.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]})
		count++
	}
	if err := sc.Err(); err != nil {
		return b, count, err
	}
	return b, count, nil
}
