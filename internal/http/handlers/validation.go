package handlers

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateDemandUpdate(req DemandUpdateRequest) []ValidationError {
	errs := []ValidationError{}
	if req.Demand == nil {
		errs = append(errs, ValidationError{Field: "demand", Description: "Demand is required"})
	}
	return errs
}

// validateTransfer only checks that every field is present. Empty warehouse
// codes and bad quantities are left to the service so both transports agree.
func validateTransfer(req TransferRequest) []ValidationError {
	errs := []ValidationError{}
	if req.From == nil {
		errs = append(errs, ValidationError{Field: "from", Description: "Source warehouse is required"})
	}
	if req.To == nil {
		errs = append(errs, ValidationError{Field: "to", Description: "Destination warehouse is required"})
	}
	if req.Qty == nil {
		errs = append(errs, ValidationError{Field: "qty", Description: "Quantity is required"})
	}
	return errs
}
