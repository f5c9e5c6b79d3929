// Package level reads the line-oriented voxel level format:
//
//	# comment
//	; comment
//	[section]
//	voxel <x> <y> <z> [size=<N>|<A>x<B>x<C>]
//
// Each voxel line places one box centered at (x, y, z). A missing size is a
// unit cube. Section headers are accepted and ignored.
package level

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"qoom/internal/logger"
	"qoom/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

// Keyword starts every placeable line. It is case-sensitive.
const Keyword = "voxel"

// Instance is one placed box: world-space center and full size.
type Instance struct {
	Position rl.Vector3
	Scale    rl.Vector3
}

// Level is the parsed contents of a level description.
type Level struct {
	source    string
	instances []Instance
	colliders []physics.AABB
}

// Empty returns a level with nothing in it.
func Empty() *Level {
	return &Level{}
}

// Load parses the level file at path.
func Load(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level: %w", err)
	}
	defer f.Close()

	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	l.source = path
	return l, nil
}

// Parse reads a level description. Bad numbers on a voxel line fall back to
// defaults (0 for coordinates, 1 for size) instead of failing; only errors
// from the reader itself are returned.
func Parse(r io.Reader) (*Level, error) {
	l := &Level{}
	section := ""
	scanner := bufio.NewScanner(r)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		if line[0] == '[' {
			section = strings.Trim(line, "[] \t")
			continue
		}

		log := logger.Log.WithFields(logrus.Fields{"line": lineNo, "section": section})

		inst, ok := parseVoxel(line, log)
		if !ok {
			log.Debugf("skipping unknown entry %q", line)
			continue
		}
		l.add(inst)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Level) add(inst Instance) {
	l.instances = append(l.instances, inst)
	l.colliders = append(l.colliders, physics.NewAABBFromCenter(inst.Position, inst.Scale))
}

// Instances returns the placed boxes in file order.
func (l *Level) Instances() []Instance {
	return l.instances
}

// Colliders returns one box per instance at its nominal size, in file order.
func (l *Level) Colliders() []physics.AABB {
	return l.colliders
}

func (l *Level) Len() int {
	return len(l.instances)
}

// Source is the path the level was loaded from, empty for parsed or empty levels.
func (l *Level) Source() string {
	return l.source
}

// parseVoxel handles one trimmed, non-comment line. ok is false when the
// line does not start with Keyword.
func parseVoxel(line string, log logrus.FieldLogger) (Instance, bool) {
	body := stripComment(line)

	var attrs string
	if i := strings.Index(body, "size"); i >= 0 && strings.HasPrefix(strings.TrimSpace(body[i+len("size"):]), "=") {
		attrs = body[i:]
		body = body[:i]
	}

	fields := strings.Fields(body)
	if len(fields) == 0 || fields[0] != Keyword {
		return Instance{}, false
	}

	inst := Instance{Scale: rl.Vector3One()}

	var coords [3]float32
	for i := range coords {
		if i+1 >= len(fields) {
			log.Warnf("voxel is missing coordinate %d, using 0", i+1)
			continue
		}
		v, err := parseFloat(fields[i+1])
		if err != nil {
			log.WithError(err).Warnf("bad voxel coordinate %q, using 0", fields[i+1])
			continue
		}
		coords[i] = v
	}
	inst.Position = rl.Vector3{X: coords[0], Y: coords[1], Z: coords[2]}

	if attrs != "" {
		_, value, _ := strings.Cut(attrs, "=")
		inst.Scale = parseSize(value, log)
	}

	return inst, true
}

// parseSize accepts "N" (a cube) or "AxBxC". Whitespace anywhere in the value
// is ignored. Components that don't parse become 1; a two-part value leaves
// the third axis at 1.
func parseSize(value string, log logrus.FieldLogger) rl.Vector3 {
	value = strings.Join(strings.Fields(value), "")

	parts := strings.FieldsFunc(value, func(r rune) bool { return r == 'x' || r == 'X' })
	if len(parts) == 0 {
		log.Warnf("empty voxel size, using 1")
		return rl.Vector3One()
	}

	if len(parts) == 1 && !strings.ContainsAny(value, "xX") {
		n := sizeComponent(parts[0], log)
		return rl.Vector3{X: n, Y: n, Z: n}
	}

	size := [3]float32{1, 1, 1}
	for i := 0; i < len(parts) && i < 3; i++ {
		size[i] = sizeComponent(parts[i], log)
	}
	return rl.Vector3{X: size[0], Y: size[1], Z: size[2]}
}

func sizeComponent(s string, log logrus.FieldLogger) float32 {
	v, err := parseFloat(s)
	if err != nil {
		log.WithError(err).Warnf("bad voxel size %q, using 1", s)
		return 1
	}
	if v < 0 {
		log.Warnf("negative voxel size %q, using 1", s)
		return 1
	}
	return v
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", s)
	}
	return float32(v), nil
}

// stripComment drops a trailing "# ..." or "; ..." comment.
func stripComment(line string) string {
	if i := strings.IndexAny(line, "#;"); i >= 0 {
		return strings.TrimSpace(line[:i])
	}
	return line
}
