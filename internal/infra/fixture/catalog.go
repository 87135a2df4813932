package fixture

// DemoDocument is one entry in the fixed catalog served to the demo account.
type DemoDocument struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Filename     string `json:"filename"`
	UploadDate   string `json:"upload_date"`
	FileSize     string `json:"file_size"`
	DocumentType string `json:"document_type"`
	Status       string `json:"status"`
}

// Catalog returns the fixed demo document listing. The titles are chosen so
// Classify maps each one back to its record.
func Catalog() []DemoDocument {
	return []DemoDocument{
		{
			ID:           "demo_loan_doc_001",
			Title:        "Business Loan Agreement - ICICI Bank",
			Filename:     "Loan1.pdf",
			UploadDate:   "2025-11-02T10:30:00Z",
			FileSize:     "450 KB",
			DocumentType: "Loan Agreement",
			Status:       "Analyzed",
		},
		{
			ID:           "demo_rental_doc_002",
			Title:        "Residential Rental Agreement - Pollachi",
			Filename:     "rental_contract.pdf",
			UploadDate:   "2025-11-02T11:15:00Z",
			FileSize:     "380 KB",
			DocumentType: "Rental Agreement",
			Status:       "Analyzed",
		},
		{
			ID:           "demo_internship_doc_003",
			Title:        "Internship Confidentiality Agreement - Global Tech",
			Filename:     "Internship-NDA.pdf",
			UploadDate:   "2025-11-02T12:00:00Z",
			FileSize:     "320 KB",
			DocumentType: "NDA Agreement",
			Status:       "Analyzed",
		},
		{
			ID:           "demo_tamil_doc_004",
			Title:        "கடன் உறுதி பத்திரம் - பொள்ளாச்சி",
			Filename:     "kadan.pdf",
			UploadDate:   "2025-11-02T16:30:00Z",
			FileSize:     "420 KB",
			DocumentType: "Tamil Loan Agreement",
			Status:       "Analyzed",
		},
	}
}
