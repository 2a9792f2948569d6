package catalog

// StorageType identifies which kind of cargo hold a product occupies.
type StorageType string

const (
	StorageSolid     StorageType = "Solid"
	StorageContainer StorageType = "Container"
	StorageLiquid    StorageType = "Liquid"
)

// ParseStorageType validates a raw storage type string.
func ParseStorageType(s string) (StorageType, error) {
	switch StorageType(s) {
	case StorageSolid, StorageContainer, StorageLiquid:
		return StorageType(s), nil
	}
	return "", NewLoadError("", "unknown storage type \""+s+"\"")
}

// Product is an immutable catalog entry describing a tradable ware.
// Identity is the id; two products with the same id are the same product.
type Product struct {
	ID      string
	Storage StorageType
	Volume  int
	Name    LocalizedText
}
