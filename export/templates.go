package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"sbx/config"
	"sbx/storyboard"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Name       string
	ID         string
	SourceFile string
	Sprites    int
	Fragments  int
	Textures   []string
}

func newValues(src string, sb *storyboard.Storyboard, st stats) Values {
	return Values{
		Context:    string(config.OutputNameTemplateFieldName),
		Name:       sb.Name,
		ID:         sb.ID,
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Sprites:    st.Sprites,
		Fragments:  st.Fragments,
		Textures:   sb.Textures(),
	}
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
