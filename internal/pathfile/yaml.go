package pathfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/pathway/internal/pathway"
)

// yamlDocument holds several pathways. A file without a pathways key is
// read as a single definition.
type yamlDocument struct {
	Pathways []yaml.Node `yaml:"pathways"`
}

func decodeYAML(data []byte) ([]pathway.Definition, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if len(doc.Pathways) == 0 {
		var probe map[string]yaml.Node
		if err := yaml.Unmarshal(data, &probe); err != nil {
			return nil, err
		}
		if _, ok := probe["points"]; !ok {
			return nil, nil
		}
		def := pathway.NewDefinition()
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, err
		}
		return []pathway.Definition{def}, nil
	}

	defs := make([]pathway.Definition, 0, len(doc.Pathways))
	for i := range doc.Pathways {
		// Start from the tool defaults so omitted keys keep them.
		def := pathway.NewDefinition()
		if err := doc.Pathways[i].Decode(&def); err != nil {
			return nil, fmt.Errorf("pathway %d: %w", i, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func encodeYAML(defs []pathway.Definition) ([]byte, error) {
	doc := struct {
		Pathways []pathway.Definition `yaml:"pathways"`
	}{defs}
	return yaml.Marshal(doc)
}
