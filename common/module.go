package common

type Module string

const (
	ModuleMarketplace Module = "marketplace"
)

func (m Module) String() string {
	return string(m)
}
