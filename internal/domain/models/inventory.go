package models

// SupplyRecordRequest logs a delivery that increases a product's stock.
type SupplyRecordRequest struct {
	SupplierID       string `json:"supplierId" validate:"required"`
	ProductID        string `json:"productId" validate:"required"`
	QuantityReceived int    `json:"quantityReceived" validate:"gte=1"`
	ReferenceNumber  string `json:"referenceNumber"`
	Notes            string `json:"notes"`
}

// SupplyRecord is a logged delivery.
type SupplyRecord struct {
	ID               string    `json:"id"`
	SupplierID       string    `json:"supplierId"`
	ProductID        string    `json:"productId"`
	QuantityReceived int       `json:"quantityReceived"`
	ReceivedDateUTC  Timestamp `json:"receivedDateUtc"`
	ReferenceNumber  string    `json:"referenceNumber"`
	Notes            string    `json:"notes"`
}

// InventoryHistory is one stock movement of a product.
type InventoryHistory struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Type      string    `json:"type"`
	CreatedAt Timestamp `json:"createdAt"`
}
