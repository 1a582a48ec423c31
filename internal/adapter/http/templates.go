package httpadapter

import (
	"embed"
	"html/template"
	"net/url"

	"campaign-manager/internal/core/ui"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"indexURL":  indexURL,
		"modalURL":  modalURL,
		"createURL": createURL,
		"deleteURL": deleteURL,
	}).ParseFS(templateFS, "templates/*.html"),
)

func sortValues(s ui.SortState) url.Values {
	return url.Values{"sort": {string(s.Key)}, "order": {string(s.Order)}}
}

// indexURL links to the page in the given sort state with the modal closed.
func indexURL(s ui.SortState) template.URL {
	return template.URL("/?" + sortValues(s).Encode())
}

// modalURL links to the page with the add-campaign modal open.
func modalURL(s ui.SortState) template.URL {
	v := sortValues(s)
	v.Set("modal", "add")
	return template.URL("/?" + v.Encode())
}

func createURL(s ui.SortState) template.URL {
	return template.URL("/campaigns?" + sortValues(s).Encode())
}

func deleteURL(id string, s ui.SortState) template.URL {
	return template.URL("/campaigns/" + url.PathEscape(id) + "/delete?" + sortValues(s).Encode())
}
