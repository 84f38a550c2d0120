package waste

import (
	"errors"
	"fmt"
	"sort"
)

// MinDifficulty and MaxDifficulty bound item ranks and session levels.
const (
	MinDifficulty = 1
	MaxDifficulty = 3
)

// ErrNoStarterItems means the catalog has no item at the minimum difficulty,
// so a fresh session could never select anything. This is a configuration
// error and aborts startup.
var ErrNoStarterItems = errors.New("catalog has no item at difficulty 1")

// Catalog is the immutable set of items a session draws from.
type Catalog []Item

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		{Name: "Joghurtbecher", Types: []Type{TypePlastik}, Difficulty: 1, ImageURL: "https://www.verbraucherzentrale.nrw/sites/default/files/styles/gallery_slider_article_tablet/public/2018-12/joghurtbecher.jpg?h=0fa75c9b&itok=JSdWafj8"},
		{Name: "Joghurtbecher mit Papier", Types: []Type{TypePlastik, TypePapier}, Difficulty: 3, ImageURL: "https://www.der-reporter.de/i/fileadmin/user_upload/import/artikel/29/3729/193729_193729_Korrekte_Entsorgung_von_Verpackungen_Credit_Initiative-_Muelltrennung-wirkt.jpg?w=1024&_=1661848155"},
		{Name: "Milchkarton", Types: []Type{TypePlastik}, Difficulty: 2, ImageURL: "https://images.noz-mhn.de/img/20141956/crop/cbase_4_3-w1200/2035156272/916945232/b7359aa0178a3589b8a5d101f96ad41f.jpg"},
		{Name: "Aluminiumdose", Types: []Type{TypePlastik}, Difficulty: 3, ImageURL: "https://www.kibag-entsorgungstechnik.ch/files/entsorgungstechnik/bilder/rubrikbilder/kibag-entsorgung-alu-dose-recycling.jpg"},
		{Name: "Papiertüte", Types: []Type{TypePapier}, Difficulty: 1, ImageURL: "https://img.freepik.com/fotos-premium/eine-zerknitterte-papiertuete-auf-weissem-hintergrund-gegenstand-von-muell_594847-3695.jpg"},
		{Name: "Plastiktüte", Types: []Type{TypePlastik}, Difficulty: 1, ImageURL: "https://www.nabu.de/imperia/md/nabu/images/oekologisch-leben/ernaehrung-einkauf/fittosize_680_453_abe2ccaa2ac843407a9ca4d9d0344434_plastiktuete_nabu_s._hennigs__16_.jpeg"},
		{Name: "Hybridverpackung (Papier/Plastik)", Types: []Type{TypePapier, TypePlastik}, Difficulty: 3, ImageURL: "https://d569htemax5yg.cloudfront.net/catalog/product/P/2/P2G8307.jpg"},
		{Name: "Apfelgriebs", Types: []Type{TypeBiologisch}, Difficulty: 2, ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c5/Apfelgriebsch.JPG/1200px-Apfelgriebsch.JPG"},
		{Name: "E-Zigarette", Types: []Type{TypeGiftig}, Difficulty: 2, ImageURL: "https://i.ds.at/IEZH8w/c:1200:800:fp:0.500:0.500/rs:fill:750:0/plain/lido-images/2024/05/02/8a325d6b-97c9-4f37-9bc4-dfbc207cdfe5.jpeg"},
		{Name: "Caprisonne", Types: []Type{TypePlastik, TypeSonstige}, Difficulty: 1, ImageURL: "https://i0.web.de/image/572/40095572,pd=1,f=sdata11/trinkpaeckchen-capri-sun-papierstrohhalm.jpg"},
		{Name: "beschichteter Papierstrohalm", Types: []Type{TypeSonstige}, Difficulty: 1, ImageURL: "https://partyvikings.de/media/catalog/product/cache/a8a7725c9f67a2f4a037f0ab6a30a27c/p/a/paperstraws.jpeg"},
	}
}

// Validate checks the startup precondition: at least one item must exist at
// the minimum difficulty, otherwise a fresh session has nothing to select.
func (c Catalog) Validate() error {
	for _, item := range c {
		if item.Difficulty == MinDifficulty {
			return nil
		}
	}
	return ErrNoStarterItems
}

// Categorize groups item names under their bin display labels. An item
// tagged with N categories appears under N labels.
func Categorize(items []Item) map[string][]string {
	groups := make(map[string][]string)
	for _, item := range items {
		for _, t := range item.Types {
			label := t.BinLabel()
			groups[label] = append(groups[label], item.Name)
		}
	}
	return groups
}

// BinLabels returns the group labels of a Categorize result in a stable order.
func BinLabels(groups map[string][]string) []string {
	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// FindItem returns the catalog item with the given name.
func (c Catalog) FindItem(name string) (Item, error) {
	for _, item := range c {
		if item.Name == name {
			return item, nil
		}
	}
	return Item{}, fmt.Errorf("item %q not in catalog", name)
}
