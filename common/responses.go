package common

// DeleteResponse is the acknowledgement payload returned by every deletion
// operation of the provisioning API.
type DeleteResponse struct {
	Message string `json:"message"`
}
