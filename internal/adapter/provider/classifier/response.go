package classifier

// apiItem mirrors one element of the classifier's "items" array.
type apiItem struct {
	Name           string `json:"name"`
	Quantity       string `json:"quantity"`
	CategoryName   string `json:"category_name"`
	CategoryNumber int    `json:"category_number"`
}

// apiResponse mirrors the classifier's JSON response body.
type apiResponse struct {
	Items []apiItem `json:"items"`
}

// classifyRequest is the JSON body sent to the classifier.
type classifyRequest struct {
	Text string `json:"text"`
}
