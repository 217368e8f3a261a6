package request

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user business admin"`
}
