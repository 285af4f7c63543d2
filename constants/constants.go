package constants

import (
	_ "embed"
)

const AppName = "ALX Listing"

const HeroImage = "/assets/hero.svg"

// Filters are the labels of the filter pill row. They overlap with, but are
// not derived from, the category tags of the catalog.
var Filters = []string{
	"Top Villa",
	"Self Checkin",
	"Free Reschedule",
	"Book Now, Pay later",
	"Beachfront",
	"Mountain View",
	"Pet Friendly",
	"Cabin",
	"Villa",
}

// AccommodationTypes are the chips shown under the header search bar.
var AccommodationTypes = []string{
	"Rooms",
	"Mansion",
	"Countryside",
	"Villa",
	"Tropical",
	"New",
	"Amazing pool",
	"Beach house",
	"Island",
	"Camping",
	"Apartment",
	"House",
	"Lakefront",
	"Farm house",
	"Treehouse",
	"Cabins",
	"Castles",
	"Lakeside",
}

// SampleListings is the JSON catalog served when no other backend is configured.
//
//go:embed sample_listings.json
var SampleListings []byte
