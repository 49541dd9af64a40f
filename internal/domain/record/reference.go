package record

import (
	"github.com/shopspring/decimal"
)

// Customer is a pull-only cache of a customer from the remote store. It is
// never pushed; rows are inserted SYNCED with the server ID set.
type Customer struct {
	SyncMeta
	Code    string `gorm:"size:50" json:"code"`
	Name    string `gorm:"size:200;not null" json:"name"`
	Phone   string `gorm:"size:50" json:"phone"`
	Email   string `gorm:"size:200" json:"email"`
	Address string `gorm:"size:500" json:"address"`
}

// StockItem is a pull-only cache of a sellable product from the remote
// store
type StockItem struct {
	SyncMeta
	Code           string          `gorm:"size:50" json:"code"`
	Name           string          `gorm:"size:200;not null" json:"name"`
	Unit           string          `gorm:"size:20" json:"unit"`
	SalesPrice     decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"sales_price"`
	QuantityOnHand decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity_on_hand"`
}
