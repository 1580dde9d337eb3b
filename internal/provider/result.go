// Package provider defines the result types returned by external
// collaborator adapters (transcription, classification). Services consume
// these and map them into domain types.
package provider

// ClassifiedItem is one grocery line as returned by the classification
// service, before mapping into the domain.
type ClassifiedItem struct {
	Name           string
	Quantity       string
	CategoryName   string
	CategoryNumber int
}

// ClassificationResult is the classifier's full response for one utterance.
type ClassificationResult struct {
	Items []ClassifiedItem
}
