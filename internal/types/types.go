// internal/types/types.go
package types

import "strconv"

// EntityID — уникальный идентификатор сущности, выдаётся монотонно.
type EntityID uint64

func (id EntityID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
