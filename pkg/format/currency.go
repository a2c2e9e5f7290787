// Package format formata valores da simulação para exibição.
package format

import (
	"github.com/vfg2006/ad-projection-api/pkg/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formata números com separador de milhar do idioma configurado
type Formatter struct {
	printer *message.Printer
}

// New cria um Formatter para a tag de idioma informada (ex: "en", "pt-BR").
// Tags inválidas usam inglês.
func New(tag string) *Formatter {
	lang, err := language.Parse(tag)
	if err != nil {
		lang = language.English
	}

	return &Formatter{printer: message.NewPrinter(lang)}
}

// Currency arredonda para a unidade inteira e agrupa os milhares
func (f *Formatter) Currency(amount float64) string {
	return f.printer.Sprintf("%.0f", utils.RoundToUnit(amount))
}

// Ratio formata quantidades e percentuais com duas casas decimais
func (f *Formatter) Ratio(value float64) string {
	return f.printer.Sprintf("%.2f", utils.RoundWithTwoDecimalPlace(value))
}
