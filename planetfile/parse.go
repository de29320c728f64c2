package planetfile

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/planetpath/planet"
)

// ErrMalformedRecord is wrapped by every record parse failure.
var ErrMalformedRecord = errors.New("planetfile: malformed record")

// maxLineBytes bounds a single record line.
const maxLineBytes = 1 << 20

// Record is one parsed line.
type Record struct {
	Coord   planet.Coord
	Biome   int
	Quality float64
}

// ParseRecord parses "{(x,y);biome;quality}". Missing or empty biome and
// quality fields take their zero defaults.
func ParseRecord(line string) (Record, error) {
	body := strings.Trim(strings.TrimSpace(line), "{}")
	fields := strings.Split(body, ";")

	if len(fields) > 3 {
		return Record{}, errors.Wrapf(ErrMalformedRecord, "%d fields, want at most 3", len(fields))
	}

	var rec Record
	c, err := planet.ParseCoord(fields[0])
	if err != nil {
		return Record{}, errors.Wrapf(ErrMalformedRecord, "coordinate %q: %v", fields[0], err)
	}
	rec.Coord = c

	if len(fields) > 1 {
		if f := strings.TrimSpace(fields[1]); f != "" {
			b, err := strconv.Atoi(f)
			if err != nil {
				return Record{}, errors.Wrapf(ErrMalformedRecord, "biome %q", f)
			}
			rec.Biome = b
		}
	}
	if len(fields) > 2 {
		if f := strings.TrimSpace(fields[2]); f != "" {
			q, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return Record{}, errors.Wrapf(ErrMalformedRecord, "quality %q", f)
			}
			rec.Quality = q
		}
	}

	return rec, nil
}

// Read parses every record from r into a new graph, then derives its
// toroidal topology. Parse errors carry the 1-based line number.
// Duplicate coordinates keep the first record.
func Read(r io.Reader, opts ...planet.Option) (*planet.Graph, error) {
	g := planet.NewGraph(opts...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := ParseRecord(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		g.AddNode(rec.Coord, rec.Biome, rec.Quality)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "planetfile: read")
	}

	if err := g.DeriveToroidalTopology(); err != nil {
		return nil, errors.Wrap(err, "planetfile: derive topology")
	}

	return g, nil
}

// Load opens path and delegates to Read. The logger, if non-nil, receives a
// summary of the loaded graph and is passed on to the graph.
func Load(path string, log *zap.Logger) (*planet.Graph, error) {
	if log == nil {
		log = zap.NewNop()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "planetfile: open")
	}
	defer f.Close()

	g, err := Read(f, planet.WithLogger(log))
	if err != nil {
		return nil, errors.Wrapf(err, "planetfile: %s", path)
	}
	log.Info("planet loaded",
		zap.String("path", path),
		zap.Int("nodes", g.Size()),
		zap.Int("edges", g.EdgeCount()),
	)

	return g, nil
}
