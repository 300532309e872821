package request

// ScaReturnForm is what the challenge page posts back to the return URL.
type ScaReturnForm struct {
	TransactionID string `form:"TransactionId"`
	Response      string `form:"Response"`
	MD            string `form:"MD" binding:"required"`
}

type DDCQuery struct {
	BIN string `form:"bin" binding:"omitempty,numeric,min=6,max=8"`
}
