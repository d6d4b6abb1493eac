// Package parser reads and writes the OARLIB text format spec.md §6
// describes: a line-oriented instance description with a small header, an
// optional VERTICES section, and a required LINKS section, each with its
// own optionally-declared column layout.
//
// Parsing proceeds in the same three phases the teacher's builder package
// splits a constructor into — gather options (here: header tokens and
// declared line formats), validate (bounds-check every referenced vertex
// id), then construct (build the *core.Graph) — rather than mutating a
// graph while scanning.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcpost/arcpost/apperr"
	"github.com/arcpost/arcpost/core"
	"github.com/rs/zerolog"
)

// Option configures a Parse call. The only knob today is the logger
// malformed-line warnings are written to; parser never holds a
// package-level logger, per the ambient per-solve-logger rule.
type Option func(*config)

type config struct {
	logger zerolog.Logger
}

// WithLogger directs warning output (malformed, skipped lines) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type header struct {
	kind     core.Kind
	kindSet  bool
	n        int
	nSet     bool
	depot    int
	depotSet bool
}

// Parse reads an OARLIB instance and builds the *core.Graph it describes.
// Returns *apperr.ParseError for any malformed input that cannot be
// recovered from: a missing Graph Type header, an empty or unclosed LINKS
// section, a non-positive vertex id, or an unparseable header/format token.
// A vertex id above the declared N is not an error: the vertex count is
// raised to the largest id seen. A malformed individual link or vertex
// line is instead skipped with a logged warning, unless skipping leaves
// the LINKS section with no well-formed line at all.
func Parse(text string, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)

	h := &header{}
	var linkFormat, vertexFormat []string
	var linkRows, vertexRows [][]string
	var linkLineNos, vertexLineNos []int
	inLinks, inVertices, sawLinks := false, false, false

	lines := strings.Split(text, "\n")
	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		switch strings.ToUpper(line) {
		case "LINKS":
			if inLinks || inVertices {
				return nil, apperr.NewParseError(lineNo, "LINKS cannot start inside another section", nil)
			}
			inLinks, sawLinks, linkFormat = true, true, nil
			continue
		case "END LINKS":
			if !inLinks {
				return nil, apperr.NewParseError(lineNo, "END LINKS without a matching LINKS", nil)
			}
			inLinks = false
			continue
		case "VERTICES":
			if inLinks || inVertices {
				return nil, apperr.NewParseError(lineNo, "VERTICES cannot start inside another section", nil)
			}
			inVertices, vertexFormat = true, nil
			continue
		case "END VERTICES":
			if !inVertices {
				return nil, apperr.NewParseError(lineNo, "END VERTICES without a matching VERTICES", nil)
			}
			inVertices = false
			continue
		}

		if inLinks || inVertices {
			if fields, ok := parseLineFormatDecl(line); ok {
				if inLinks {
					linkFormat = fields
				} else {
					vertexFormat = fields
				}
				continue
			}
			if inLinks {
				linkRows = append(linkRows, splitFields(line))
				linkLineNos = append(linkLineNos, lineNo)
			} else {
				vertexRows = append(vertexRows, splitFields(line))
				vertexLineNos = append(vertexLineNos, lineNo)
			}
			continue
		}

		ok, err := parseHeaderLine(line, lineNo, h)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.NewParseError(lineNo, fmt.Sprintf("unrecognized line %q", line), nil)
		}
	}

	if inLinks {
		return nil, apperr.NewParseError(len(lines), "LINKS section was never closed", nil)
	}
	if inVertices {
		return nil, apperr.NewParseError(len(lines), "VERTICES section was never closed", nil)
	}
	if !h.kindSet {
		return nil, apperr.NewParseError(0, "missing Graph Type header", nil)
	}
	if !sawLinks {
		return nil, apperr.NewParseError(0, "instance has no LINKS section", nil)
	}

	return build(cfg, h, linkFormat, linkRows, linkLineNos, vertexFormat, vertexRows, vertexLineNos)
}

func build(cfg config, h *header,
	linkFormat []string, linkRows [][]string, linkLineNos []int,
	vertexFormat []string, vertexRows [][]string, vertexLineNos []int,
) (*core.Graph, error) {
	format := linkFormat
	if format == nil {
		format = defaultLinkFormat(h.kind)
	}

	type linkLine struct {
		pl     *parsedLink
		lineNo int
	}
	var links []linkLine
	maxSeen := 0
	for i, row := range linkRows {
		pl, err := parseLinkRow(format, row)
		if err != nil || !pl.valid(h.kind) {
			cfg.logger.Warn().Int("line", linkLineNos[i]).Msg("skipping malformed link line")
			continue
		}
		links = append(links, linkLine{pl: pl, lineNo: linkLineNos[i]})
		if pl.from > maxSeen {
			maxSeen = pl.from
		}
		if pl.to > maxSeen {
			maxSeen = pl.to
		}
	}
	if len(links) == 0 {
		return nil, apperr.NewParseError(0, "LINKS section has no well-formed link line", nil)
	}

	var vertices []*parsedVertex
	nextAutoID := 1
	for i, row := range vertexRows {
		pv, err := parseVertexRow(vertexFormat, row)
		if err != nil {
			cfg.logger.Warn().Int("line", vertexLineNos[i]).Msg("skipping malformed vertex line")
			continue
		}
		pv.lineNo = vertexLineNos[i]
		if !pv.hasID {
			pv.id = nextAutoID
		}
		nextAutoID = pv.id + 1
		vertices = append(vertices, pv)
		if pv.id > maxSeen {
			maxSeen = pv.id
		}
	}

	// spec.md §6: "If N is missing or smaller than the maximum id seen, the
	// parser substitutes the maximum id." Applied literally, this makes a
	// forward reference beyond a correctly-sized N impossible to produce by
	// construction; the companion "parse error" sentence is enforced below
	// as a side effect of EnsureVertices/AddLink/SetCoords rejecting any
	// id <= 0, which substitution cannot repair.
	n := maxSeen
	if h.nSet && h.n > n {
		n = h.n
	}
	if n == 0 {
		return nil, apperr.NewParseError(0, "instance declares no vertices", nil)
	}

	g := core.NewGraph(h.kind)
	g.EnsureVertices(n)

	for _, v := range vertices {
		if err := g.SetCoords(v.id, v.x, v.y); err != nil {
			return nil, apperr.NewParseError(v.lineNo, fmt.Sprintf("vertex id %d is not a positive vertex id", v.id), err)
		}
	}

	for _, ll := range links {
		if _, err := g.AddLink(ll.pl.from, ll.pl.to, ll.pl.cost, ll.pl.options(h.kind)...); err != nil {
			return nil, apperr.NewParseError(ll.lineNo, "link references a non-positive vertex id, or has a negative cost", err)
		}
	}

	if h.depotSet {
		if err := g.SetDepot(h.depot); err != nil {
			return nil, apperr.NewParseError(0, fmt.Sprintf("depot id %d does not name an existing vertex", h.depot), err)
		}
	}

	return g, nil
}

func defaultLinkFormat(kind core.Kind) []string {
	switch kind {
	case core.Windy:
		return []string{"v1", "v2", "cost", "reversecost", "required"}
	case core.Mixed:
		return []string{"v1", "v2", "cost", "isdirected", "required"}
	default:
		return []string{"v1", "v2", "cost", "required"}
	}
}

// parsedLink accumulates whichever columns a link row's format declared;
// fromSet/toSet/costSet/hasReverse record which mandatory columns were
// actually present, since a row may be shorter than the declared format.
type parsedLink struct {
	from, to                int
	fromSet, toSet, costSet bool
	cost, reverseCost       int64
	hasReverse              bool
	directed                bool
	hasDirected             bool
	required                bool
}

// valid reports whether every column a link of this graph kind requires
// was present: v1, v2, and cost always; reverseCost additionally for
// Windy (the one column the format table never brackets as optional).
func (p *parsedLink) valid(kind core.Kind) bool {
	if !p.fromSet || !p.toSet || !p.costSet {
		return false
	}
	if kind == core.Windy && !p.hasReverse {
		return false
	}

	return true
}

func (p *parsedLink) options(kind core.Kind) []core.LinkOption {
	var opts []core.LinkOption
	if kind == core.Windy {
		opts = append(opts, core.WithReverseCost(p.reverseCost))
	}
	if kind == core.Mixed && p.hasDirected {
		opts = append(opts, core.WithLinkDirected(p.directed))
	}
	if p.required {
		opts = append(opts, core.WithRequired())
	}

	return opts
}

func parseLinkRow(format []string, fields []string) (*parsedLink, error) {
	pl := &parsedLink{}
	n := len(fields)
	if n > len(format) {
		n = len(format)
	}

	for i := 0; i < n; i++ {
		val := fields[i]
		switch format[i] {
		case "v1":
			v, err := strconv.Atoi(val)
			if err != nil {
				return nil, err
			}
			pl.from, pl.fromSet = v, true
		case "v2":
			v, err := strconv.Atoi(val)
			if err != nil {
				return nil, err
			}
			pl.to, pl.toSet = v, true
		case "cost":
			v, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return nil, err
			}
			pl.cost, pl.costSet = v, true
		case "reversecost":
			v, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return nil, err
			}
			pl.reverseCost, pl.hasReverse = v, true
		case "isdirected":
			b, err := parseBool(val)
			if err != nil {
				return nil, err
			}
			pl.directed, pl.hasDirected = b, true
		case "required":
			b, err := parseBool(val)
			if err != nil {
				return nil, err
			}
			pl.required = b
		default:
			return nil, fmt.Errorf("unknown link column %q", format[i])
		}
	}

	return pl, nil
}

type parsedVertex struct {
	id     int
	hasID  bool
	x, y   float64
	lineNo int
}

// parseVertexRow parses one VERTICES row. With no declared format it
// dispatches on field count per spec.md §6's "[id,]x,y": two fields is
// x,y with an auto-assigned id, three is id,x,y.
func parseVertexRow(format []string, fields []string) (*parsedVertex, error) {
	pv := &parsedVertex{}

	if format != nil {
		n := len(fields)
		if n > len(format) {
			n = len(format)
		}
		for i := 0; i < n; i++ {
			val := fields[i]
			switch format[i] {
			case "id":
				v, err := strconv.Atoi(val)
				if err != nil {
					return nil, err
				}
				pv.id, pv.hasID = v, true
			case "x":
				v, err := strconv.ParseFloat(val, 64)
				if err != nil {
					return nil, err
				}
				pv.x = v
			case "y":
				v, err := strconv.ParseFloat(val, 64)
				if err != nil {
					return nil, err
				}
				pv.y = v
			default:
				return nil, fmt.Errorf("unknown vertex column %q", format[i])
			}
		}

		return pv, nil
	}

	switch len(fields) {
	case 2:
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, err
		}
		pv.x, pv.y = x, y
	case 3:
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, err
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, err
		}
		pv.id, pv.hasID, pv.x, pv.y = id, true, x, y
	default:
		return nil, fmt.Errorf("vertex row has %d fields, want 2 or 3", len(fields))
	}

	return pv, nil
}

func parseHeaderLine(line string, lineNo int, h *header) (bool, error) {
	switch {
	case hasPrefixFold(line, "graph type:"):
		val := strings.ToLower(strings.TrimSpace(line[len("graph type:"):]))
		k, ok := parseKind(val)
		if !ok {
			return false, apperr.NewParseError(lineNo, fmt.Sprintf("unknown graph type %q", val), nil)
		}
		h.kind, h.kindSet = k, true

		return true, nil
	case hasPrefixFold(line, "n:"):
		v, err := strconv.Atoi(strings.TrimSpace(line[len("n:"):]))
		if err != nil {
			return false, apperr.NewParseError(lineNo, "N header is not an integer", err)
		}
		h.n, h.nSet = v, true

		return true, nil
	case hasPrefixFold(line, "m:"):
		if _, err := strconv.Atoi(strings.TrimSpace(line[len("m:"):])); err != nil {
			return false, apperr.NewParseError(lineNo, "M header is not an integer", err)
		}
		// M is advisory only (spec.md §6); parsed for validation, not kept.
		return true, nil
	case hasPrefixFold(line, "depot id:"):
		v, err := strconv.Atoi(strings.TrimSpace(line[len("depot id:"):]))
		if err != nil {
			return false, apperr.NewParseError(lineNo, "Depot ID header is not an integer", err)
		}
		h.depot, h.depotSet = v, true

		return true, nil
	}

	return false, nil
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func parseKind(s string) (core.Kind, bool) {
	switch s {
	case "undirected":
		return core.Undirected, true
	case "directed":
		return core.Directed, true
	case "mixed":
		return core.Mixed, true
	case "windy":
		return core.Windy, true
	default:
		return 0, false
	}
}

// parseBool accepts the token spellings spec.md §6 names: true/false,
// t/f, yes/no, 1/0, case-insensitive.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "1":
		return true, nil
	case "false", "f", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean token: %q", s)
	}
}

func parseLineFormatDecl(line string) ([]string, bool) {
	if !hasPrefixFold(line, "line format:") {
		return nil, false
	}
	fields := splitFields(line[len("line format:"):])
	for i := range fields {
		fields[i] = strings.ToLower(fields[i])
	}

	return fields, true
}

func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
