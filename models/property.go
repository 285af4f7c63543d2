package models

// Address is where a property is located.
type Address struct {
	State   string `bson:"state" json:"state" yaml:"state"`
	City    string `bson:"city" json:"city" yaml:"city"`
	Country string `bson:"country" json:"country" yaml:"country"`
}

// Offers describes what a stay includes. The values are display text.
type Offers struct {
	Bed       string `bson:"bed" json:"bed" yaml:"bed"`
	Shower    string `bson:"shower" json:"shower" yaml:"shower"`
	Occupants string `bson:"occupants" json:"occupants" yaml:"occupants"`
}

// Property is one catalog record. Name is the display title and the list key,
// so it is unique within a catalog.
type Property struct {
	Name     string   `bson:"name" json:"name" yaml:"name"`
	Address  Address  `bson:"address" json:"address" yaml:"address"`
	Rating   float64  `bson:"rating" json:"rating" yaml:"rating"`
	Category []string `bson:"category" json:"category" yaml:"category"`
	Price    float64  `bson:"price" json:"price" yaml:"price"`
	Offers   Offers   `bson:"offers" json:"offers" yaml:"offers"`
	Image    string   `bson:"image" json:"image" yaml:"image"`
	Discount string   `bson:"discount" json:"discount" yaml:"discount"`
}

// Location is the "City, Country" line shown on summary cards.
func (p Property) Location() string {
	switch {
	case p.Address.City == "":
		return p.Address.Country
	case p.Address.Country == "":
		return p.Address.City
	}
	return p.Address.City + ", " + p.Address.Country
}

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
