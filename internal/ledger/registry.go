package ledger

// Direction tells whether a transaction adds to or takes from a wallet.
// The values are the exact strings persisted to the backing sheet.
type Direction string

const (
	DirectionIn  Direction = "Masuk"
	DirectionOut Direction = "Keluar"
)

// Registry maps short numeric codes to display names. Codes are what the
// user types; display names are what gets persisted and reported.
type Registry struct {
	names map[string]string
	order []string
}

func NewRegistry(entries [][2]string) *Registry {
	r := &Registry{names: make(map[string]string, len(entries))}
	for _, e := range entries {
		r.names[e[0]] = e[1]
		r.order = append(r.order, e[0])
	}
	return r
}

// Resolve returns the display name for a code.
func (r *Registry) Resolve(code string) (string, bool) {
	name, ok := r.names[code]
	return name, ok
}

// Codes returns the registered codes in registration order.
func (r *Registry) Codes() []string {
	return r.order
}

// DefaultCategories returns the category registry used by the bot.
func DefaultCategories() *Registry {
	return NewRegistry([][2]string{
		{"1", "Makanan"},
		{"2", "Perawatan & Kesehatan"},
		{"3", "Transportasi"},
		{"4", "Kebutuhan Pendidikan"},
		{"5", "Bayar Sewa Kost"},
		{"6", "Lainnya"},
		{"7", "Gaji"},
		{"8", "Honor"},
		{"9", "Ngojek"},
	})
}

// DefaultWallets returns the wallet registry used by the bot.
func DefaultWallets() *Registry {
	return NewRegistry([][2]string{
		{"1", "Cash"},
		{"2", "ShopeePay"},
		{"3", "GoPay"},
		{"4", "Dana"},
		{"5", "Mandiri"},
		{"6", "BCA"},
		{"7", "BRI"},
	})
}

// income category codes; everything else registered is an outflow
var incomeCodes = map[string]bool{
	"7": true,
	"8": true,
	"9": true,
}

// ClassifyDirection derives the flow direction from a category code alone.
// It is total over the category registry: any registered code that is not
// an income code is an outflow.
func ClassifyDirection(categoryCode string) Direction {
	if incomeCodes[categoryCode] {
		return DirectionIn
	}
	return DirectionOut
}
