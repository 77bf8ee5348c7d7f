package models

// SalesFilter narrows a dataset. Filters combine with AND; a nil or
// empty slice means "no restriction on that dimension", never
// "exclude everything". Gerencias matches by substring (partial
// management codes are common in the exports).
type SalesFilter struct {
	Ciclos            []string
	Setores           []string
	Marcas            []string
	Gerencias         []string
	ApenasMultimarcas bool
}

// IsZero reports whether the filter restricts anything at all.
func (f SalesFilter) IsZero() bool {
	return len(f.Ciclos) == 0 && len(f.Setores) == 0 && len(f.Marcas) == 0 &&
		len(f.Gerencias) == 0 && !f.ApenasMultimarcas
}
