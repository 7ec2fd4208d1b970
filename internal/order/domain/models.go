package domain

import (
	"time"

	customerdomain "github.com/storelane/storelane/internal/customer/domain"
	itemdomain "github.com/storelane/storelane/internal/item/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order links a customer to an item with a quantity. It holds non-owning
// references; deleting the referenced item or customer leaves the order in
// place.
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID primitive.ObjectID `bson:"customer_id"`
	ItemID     primitive.ObjectID `bson:"item_id"`
	Quantity   int                `bson:"quantity"`
	CreatedAt  time.Time          `bson:"created_at"`
}

// OrderView is the API representation of an order with its references
// resolved. A dangling reference is rendered as null rather than failing
// the read.
type OrderView struct {
	ID        primitive.ObjectID       `json:"id"`
	Customer  *customerdomain.Customer `json:"customer"`
	Item      *itemdomain.Item         `json:"item"`
	Quantity  int                      `json:"quantity"`
	CreatedAt time.Time                `json:"created_at"`
}
