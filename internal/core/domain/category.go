package domain

// Category identifies a service vertical. Every category page is the
// same parameterized page driven by one of these values.
type Category string

const (
	// CategoryAppliance covers appliance sales and repair.
	CategoryAppliance Category = "appliance"

	// CategoryCleaning covers home and office cleaning.
	CategoryCleaning Category = "cleaning"

	// CategoryAuto covers auto services.
	CategoryAuto Category = "auto"

	// CategoryRepair covers home repair and handymen.
	CategoryRepair Category = "repair"

	// CategoryOutdoor covers landscaping and outdoor work.
	CategoryOutdoor Category = "outdoor"

	// CategoryMoving covers moving and hauling.
	CategoryMoving Category = "moving"

	// CategoryFinancial covers financial and legal services.
	CategoryFinancial Category = "financial"

	// CategoryUtilities covers utility installation and service.
	CategoryUtilities Category = "utilities"
)

// Categories returns all known verticals in display order.
func Categories() []Category {
	return []Category{
		CategoryAppliance,
		CategoryCleaning,
		CategoryAuto,
		CategoryRepair,
		CategoryOutdoor,
		CategoryMoving,
		CategoryFinancial,
		CategoryUtilities,
	}
}

// Valid reports whether c is a known vertical.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Display returns the human-readable category name.
func (c Category) Display() string {
	switch c {
	case CategoryAppliance:
		return "Appliances"
	case CategoryCleaning:
		return "Cleaning"
	case CategoryAuto:
		return "Auto Services"
	case CategoryRepair:
		return "Home Repair"
	case CategoryOutdoor:
		return "Outdoor"
	case CategoryMoving:
		return "Moving"
	case CategoryFinancial:
		return "Financial Services"
	case CategoryUtilities:
		return "Utilities"
	default:
		return string(c)
	}
}
