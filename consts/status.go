package consts

// ResponseStatus is the <Status> value of an instruction response.
type ResponseStatus string

const (
	ResponseStatusSuccess ResponseStatus = "Sucesso"
	ResponseStatusFailure ResponseStatus = "Falha"
)
