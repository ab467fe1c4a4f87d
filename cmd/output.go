package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/devon-mar/linkheader/config"
	"github.com/devon-mar/linkheader/linkhdr"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

const noRel = "-"

type linkRecord struct {
	// nil if the link has no rel
	Rel     *string           `json:"rel" yaml:"rel"`
	URI     string            `json:"uri" yaml:"uri"`
	Queries map[string]string `json:"queries" yaml:"queries"`
	Params  map[string]string `json:"params" yaml:"params"`

	link *linkhdr.Link
}

func newRecord(rel *string, l *linkhdr.Link) linkRecord {
	return linkRecord{
		Rel:     rel,
		URI:     l.RawURI,
		Queries: l.Queries,
		Params:  l.Params,
		link:    l,
	}
}

// recordsFromLinkMap returns the links of m sorted by relation.
// If only isn't empty, other relations are skipped.
func recordsFromLinkMap(m linkhdr.LinkMap, only []string) []linkRecord {
	ret := make([]linkRecord, 0, len(m))
	for _, rel := range m.Relations() {
		if len(only) > 0 && (!rel.Valid || !slices.Contains(only, rel.Rel)) {
			continue
		}
		var r *string
		if rel.Valid {
			s := rel.Rel
			r = &s
		}
		ret = append(ret, newRecord(r, m[rel]))
	}
	return ret
}

func recordsFromRelationMap(m linkhdr.RelationLinkMap, only []string) []linkRecord {
	ret := make([]linkRecord, 0, len(m))
	for _, rel := range m.Relations() {
		if len(only) > 0 && !slices.Contains(only, rel) {
			continue
		}
		r := rel
		ret = append(ret, newRecord(&r, m[rel]))
	}
	return ret
}

func writeRecords(w io.Writer, format string, records []linkRecord) error {
	switch format {
	case config.OutputJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(records)
	case config.OutputYAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(records); err != nil {
			return err
		}
		return e.Close()
	case config.OutputText:
		for _, r := range records {
			rel := noRel
			if r.Rel != nil {
				rel = *r.Rel
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\n", rel, r.link); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
