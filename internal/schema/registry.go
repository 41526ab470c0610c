package schema

import (
	"encoding/json"
	"sort"
	"strings"
)

// Document kinds.
const (
	KindCompany        = "company"
	KindServiceInvoice = "service-invoice"
	KindProductInvoice = "product-invoice"
)

// Contract validates one document kind at one version and returns the
// normalized JSON body that is safe to forward.
type Contract interface {
	Kind() string
	Version() string
	Validate(raw []byte) ([]byte, error)
}

type contract[T any] struct {
	kind    string
	version string
}

func (c contract[T]) Kind() string    { return c.kind }
func (c contract[T]) Version() string { return c.version }

func (c contract[T]) Validate(raw []byte) ([]byte, error) {
	doc, err := Validate[T](raw)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

var registry = map[string]Contract{}

func register(c Contract) { registry[c.Kind()+"/"+c.Version()] = c }

func init() {
	register(contract[CompanyV1]{KindCompany, "v1"})
	register(contract[CompanyV2Body]{KindCompany, "v2"})
	register(contract[ServiceInvoice]{KindServiceInvoice, "v1"})
	register(contract[ServiceInvoiceRequest]{KindServiceInvoice, "v2"})
	register(contract[ProductInvoice]{KindProductInvoice, "v2"})
}

// Lookup returns the contract for a kind and version. Versions may be
// written "v2" or "2".
func Lookup(kind, version string) (Contract, bool) {
	v := strings.ToLower(strings.TrimSpace(version))
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	c, ok := registry[strings.ToLower(strings.TrimSpace(kind))+"/"+v]
	return c, ok
}

// MustLookup is Lookup for contracts wired at startup.
func MustLookup(kind, version string) Contract {
	c, ok := Lookup(kind, version)
	if !ok {
		panic("schema: no contract " + kind + "/" + version)
	}
	return c
}

// Contracts lists the registered contracts ordered by kind and version.
func Contracts() []Contract {
	out := make([]Contract, 0, len(registry))
	for _, c := range registry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind() != out[j].Kind() {
			return out[i].Kind() < out[j].Kind()
		}
		return out[i].Version() < out[j].Version()
	})
	return out
}
