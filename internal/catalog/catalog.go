// Package catalog holds the fixed menu of paid add-ons and design templates
// offered on top of a service package. The data is code-embedded on purpose:
// it is the single source of truth for both the public ordering flow and the
// admin package editor, and is served to clients via the catalog endpoint so
// nothing ever re-embeds a copy.
package catalog

type Addon struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type Template struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
}

var addons = []Addon{
	{ID: "blog", Name: "Blog Sistemi", Price: 1500},
	{ID: "ecommerce", Name: "E-Ticaret Modülü", Price: 3000},
	{ID: "booking", Name: "Randevu Sistemi", Price: 2000},
	{ID: "membership", Name: "Üyelik Sistemi", Price: 2500},
	{ID: "chat", Name: "Canlı Destek", Price: 1000},
	{ID: "social", Name: "Sosyal Medya Entegrasyonu", Price: 500},
	{ID: "multilang", Name: "Çoklu Dil Desteği", Price: 2000},
	{ID: "seo", Name: "Gelişmiş SEO Optimizasyonu", Price: 1200},
	{ID: "backup", Name: "Otomatik Yedekleme", Price: 800},
	{ID: "cdn", Name: "CDN Hızlandırma", Price: 600},
	{ID: "security", Name: "Gelişmiş Güvenlik", Price: 1500},
	{ID: "performance", Name: "Performans Optimizasyonu", Price: 1000},
}

var templates = []Template{
	{ID: "1", Name: "Modern Minimal", Category: "Kurumsal", Price: 0},
	{ID: "2", Name: "Creative Agency", Category: "Ajans", Price: 500},
	{ID: "3", Name: "E-Commerce Pro", Category: "E-Ticaret", Price: 1000},
	{ID: "4", Name: "Restaurant Deluxe", Category: "Restoran", Price: 750},
	{ID: "5", Name: "Portfolio Showcase", Category: "Portfolyo", Price: 300},
	{ID: "6", Name: "Medical Care", Category: "Sağlık", Price: 800},
	{ID: "7", Name: "Tech Startup", Category: "Teknoloji", Price: 600},
	{ID: "8", Name: "Fashion Store", Category: "Moda", Price: 900},
	{ID: "9", Name: "Real Estate", Category: "Emlak", Price: 1200},
	{ID: "10", Name: "Education Hub", Category: "Eğitim", Price: 700},
	{ID: "11", Name: "Fitness Center", Category: "Spor", Price: 650},
	{ID: "12", Name: "Travel Agency", Category: "Turizm", Price: 850},
	{ID: "13", Name: "Law Firm", Category: "Hukuk", Price: 950},
	{ID: "14", Name: "Beauty Salon", Category: "Güzellik", Price: 550},
	{ID: "15", Name: "Auto Service", Category: "Otomotiv", Price: 750},
}

// Addons returns the add-on catalog in display order.
func Addons() []Addon {
	out := make([]Addon, len(addons))
	copy(out, addons)
	return out
}

// Templates returns the design template catalog in display order.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// AddonByID looks up an add-on. A missing id is reported explicitly, never
// defaulted.
func AddonByID(id string) (Addon, bool) {
	for _, a := range addons {
		if a.ID == id {
			return a, true
		}
	}
	return Addon{}, false
}

// TemplateByID looks up a design template.
func TemplateByID(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// ValidAddonIDs reports whether every id exists in the add-on catalog,
// returning the first unknown id otherwise.
func ValidAddonIDs(ids []string) (string, bool) {
	for _, id := range ids {
		if _, ok := AddonByID(id); !ok {
			return id, false
		}
	}
	return "", true
}
