package admin

type SetVerifiedRequest struct {
	IsVerified *bool `json:"isVerified" binding:"required"`
}
