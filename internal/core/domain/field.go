package domain

// Field names one input of the campaign form. The string value is also the
// key reported in validation messages and used as the HTML input name.
type Field string

const (
	FieldName      Field = "name"
	FieldStartDate Field = "startDate"
	FieldEndDate   Field = "endDate"
	FieldClicks    Field = "clicks"
	FieldCost      Field = "cost"
	FieldRevenue   Field = "revenue"
)

// Fields returns the form fields in declared order. Validation reports the
// first empty field in this order.
func Fields() []Field {
	return []Field{FieldName, FieldStartDate, FieldEndDate, FieldClicks, FieldCost, FieldRevenue}
}

// Valid reports whether f is one of the declared fields.
func (f Field) Valid() bool {
	switch f {
	case FieldName, FieldStartDate, FieldEndDate, FieldClicks, FieldCost, FieldRevenue:
		return true
	}
	return false
}

// Numeric reports whether the field holds a number.
func (f Field) Numeric() bool {
	return f == FieldClicks || f == FieldCost || f == FieldRevenue
}

// Label is the human readable caption for the field.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Campaign Name"
	case FieldStartDate:
		return "Start Date"
	case FieldEndDate:
		return "End Date"
	case FieldClicks:
		return "Clicks"
	case FieldCost:
		return "Cost"
	case FieldRevenue:
		return "Revenue"
	}
	return string(f)
}
