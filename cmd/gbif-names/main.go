// Command gbif-names rebuilds scientific name strings from atomised parts,
// supplied either as flags for a single name or as a YAML batch file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gbifargentina/gbif-api/pkg/name"
	"github.com/gbifargentina/gbif-api/pkg/vocabulary"
)

// record mirrors name.Parts with YAML tags for batch input files.
type record struct {
	Type            string `yaml:"type"`
	Genus           string `yaml:"genus"`
	InfraGeneric    string `yaml:"infrageneric"`
	Species         string `yaml:"species"`
	InfraSpecies    string `yaml:"infraspecies"`
	RankMarker      string `yaml:"rank"`
	Authorship      string `yaml:"authorship"`
	Year            string `yaml:"year"`
	BracketAuthor   string `yaml:"bracketAuthorship"`
	BracketYear     string `yaml:"bracketYear"`
	CultivarEpithet string `yaml:"cultivar"`
	Strain          string `yaml:"strain"`
	Sensu           string `yaml:"sensu"`
	NomStatus       string `yaml:"nomStatus"`
	Remarks         string `yaml:"remarks"`
}

func (r record) parts() name.Parts {
	return name.Parts{
		Type:                 vocabulary.NameType(r.Type),
		GenusOrAbove:         r.Genus,
		InfraGeneric:         r.InfraGeneric,
		SpecificEpithet:      r.Species,
		InfraSpecificEpithet: r.InfraSpecies,
		RankMarker:           r.RankMarker,
		Authorship:           r.Authorship,
		Year:                 r.Year,
		BracketAuthorship:    r.BracketAuthor,
		BracketYear:          r.BracketYear,
		CultivarEpithet:      r.CultivarEpithet,
		Strain:               r.Strain,
		Sensu:                r.Sensu,
		NomStatus:            r.NomStatus,
		Remarks:              r.Remarks,
	}
}

func main() {
	input := flag.String("input", "", "YAML file with a list of name records (flags ignored if set)")
	profile := flag.String("profile", "canonical", "rendering profile: canonical, marker, complete, full")

	var r record
	flag.StringVar(&r.Type, "type", "SCIENTIFIC", "name type")
	flag.StringVar(&r.Genus, "genus", "", "genus or uninomial above genus")
	flag.StringVar(&r.InfraGeneric, "infrageneric", "", "infrageneric name")
	flag.StringVar(&r.Species, "species", "", "specific epithet")
	flag.StringVar(&r.InfraSpecies, "infraspecies", "", "infraspecific epithet")
	flag.StringVar(&r.RankMarker, "rank", "", "rank marker, e.g. subsp.")
	flag.StringVar(&r.Authorship, "authorship", "", "author citation")
	flag.StringVar(&r.Year, "year", "", "year of the citation")
	flag.StringVar(&r.BracketAuthor, "bracket-authorship", "", "original author citation")
	flag.StringVar(&r.BracketYear, "bracket-year", "", "year of the original citation")
	flag.StringVar(&r.CultivarEpithet, "cultivar", "", "cultivar epithet")
	flag.StringVar(&r.Strain, "strain", "", "strain designation")
	flag.StringVar(&r.Sensu, "sensu", "", "sensu/sec concept reference")
	flag.StringVar(&r.NomStatus, "nom-status", "", "nomenclatural status note")
	flag.StringVar(&r.Remarks, "remarks", "", "informal remarks")
	flag.Parse()

	opts, err := profileOptions(*profile)
	if err != nil {
		log.Fatalf("invalid profile: %v", err)
	}

	records := []record{r}
	if *input != "" {
		records, err = loadRecords(*input)
		if err != nil {
			log.Fatalf("failed to read %s: %v", *input, err)
		}
	}

	for _, rec := range records {
		out, ok := name.Build(name.New(rec.parts()), opts)
		if !ok {
			fmt.Println("<empty>")
			continue
		}
		fmt.Println(out)
	}
}

func profileOptions(profile string) (name.Options, error) {
	switch profile {
	case "canonical":
		return name.Canonical(), nil
	case "marker":
		return name.CanonicalWithMarker(), nil
	case "complete":
		return name.CanonicalComplete(), nil
	case "full":
		return name.Full(), nil
	}
	return name.Options{}, fmt.Errorf("unknown profile %q", profile)
}

func loadRecords(path string) ([]record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
