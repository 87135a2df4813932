package fixture

import "github.com/legallens/backend/internal/domain/analysis"

// Demo analysis records served to the demo account. Content is fixed so
// demo runs are reproducible; timestamps are deliberately static.
var records = map[Kind]*analysis.Record{
	KindLoan:       loanRecord,
	KindRental:     rentalRecord,
	KindInternship: internshipRecord,
	KindTamil:      tamilRecord,
}

var loanRecord = &analysis.Record{
	DocumentSummary: `This is a business loan agreement executed on November 2, 2025 in Chennai, Tamil Nadu between ICICI Bank Limited (Lender) and GreenField Electronics Pvt. Ltd. (Borrower). The agreement establishes the terms under which ICICI Bank will loan Rs. 50,00,000 (Fifty Lakhs) to GreenField Electronics for business purposes.

The loan carries an annual interest rate of 12% calculated monthly, beginning on November 9, 2025. Repayment will be made in consecutive monthly installments starting December 9, 2025 and continuing on the 9th of each month until November 9, 2030, when the final balance becomes due. This creates a 5-year repayment period.

The borrower may prepay the loan at any time without penalties or bonus charges, which provides flexibility if the business generates surplus cash. If a payment is missed, the borrower gets a 30-day grace period before a late fee of Rs. 1,000 is charged.`,
	LegalTerms: []analysis.LegalTerm{
		{Term: "Principal Amount", Definition: "The original loan amount of Rs. 50,00,000 borrowed by GreenField Electronics from ICICI Bank, excluding interest and fees.", Source: "Banking Law"},
		{Term: "Annual Percentage Rate (APR)", Definition: "The yearly interest rate of 12% charged on the outstanding loan balance, calculated monthly.", Source: "Reserve Bank of India Guidelines"},
		{Term: "Prepayment Clause", Definition: "Contractual provision allowing the borrower to repay the loan early without additional penalties or charges.", Source: "Banking Regulation Act"},
		{Term: "Grace Period", Definition: "A 30-day period after a missed payment during which no late fees are charged, providing borrower protection.", Source: "Fair Practices Code"},
		{Term: "Default", Definition: "Failure to make loan payments as per agreed schedule, which may trigger additional charges and collection actions.", Source: "Indian Contract Act, 1872"},
	},
	RiskAnalysis: `OVERALL RISK LEVEL: MODERATE - This business loan agreement has standard commercial terms with balanced protections.

**INTEREST RATE ANALYSIS:**
The 12% annual rate calculated monthly is within market range for unsecured business lending, but monthly compounding raises the effective cost above the headline rate.

**REPAYMENT SCHEDULE:**
The fixed 5-year installment schedule provides predictability. Missing the 9th-of-month due date starts the 30-day grace period; after that a Rs. 1,000 late fee applies per missed installment.

**PREPAYMENT FLEXIBILITY:** The no-penalty prepayment clause is advantageous for the borrower, allowing early repayment if business conditions improve.

**RECOMMENDATIONS:**
1. Maintain a cash buffer covering at least two monthly installments
2. Track the effective annualized cost including monthly compounding
3. Use the prepayment clause whenever surplus cash accumulates`,
	ApplicableLaws: []analysis.ApplicableLaw{
		{Law: "Banking Regulation Act, 1949 - Sections 5 & 6", Description: "Governs banking operations and loan disbursement procedures. Ensures ICICI Bank operates within regulatory framework for business lending."},
		{Law: "Indian Contract Act, 1872 - Sections 73-74", Description: "Defines compensation for breach of contract and liquidated damages. Applicable to loan default scenarios and penalty calculations."},
		{Law: "Reserve Bank of India Guidelines on Fair Practices Code", Description: "Mandates transparent lending practices, interest rate disclosure, and borrower protection measures in banking operations."},
		{Law: "Securitisation and Reconstruction of Financial Assets Act, 2002", Description: "Provides legal framework for asset reconstruction and recovery in case of loan defaults by financial institutions."},
	},
	Metadata: analysis.Metadata{
		analysis.MetaTimestamp:    "2025-11-02T15:45:00Z",
		analysis.MetaAnalysisType: "demo_business_loan_analysis",
		analysis.MetaDocumentType: "Business Loan Agreement",
		analysis.MetaTextLength:   7500,
		analysis.MetaConfidence:   0.98,
	},
}

var rentalRecord = &analysis.Record{
	DocumentSummary: `This is a residential rental agreement executed on June 1, 2025, in Pollachi, Tamil Nadu, between Mr. Suganth Nadar (Owner) and Mr. Abiruth Chinna Gounder (Tenant). The property at No. 70, Kamatchi Temple Road consists of two bedrooms, living room, kitchen, and parking facilities.

The agreement runs for 25 months from June 1, 2025 to July 31, 2027. Monthly rent is Rs. 5,000 plus Rs. 500 maintenance, payable by the 7th of each month without fail. The tenant paid Rs. 20,000 as an interest-free security deposit, which will be refunded after deducting any dues or damages, excluding normal wear and tear.

The property must be used exclusively for residential purposes. The tenant cannot sublet, assign, or allow others to occupy the premises. Day-to-day minor repairs are the tenant's responsibility, while structural and major repairs remain with the owner. Either party may terminate with one month written notice.`,
	LegalTerms: []analysis.LegalTerm{
		{Term: "Security Deposit", Definition: "Rs. 20,000 refundable amount paid by tenant as guarantee against damages or unpaid dues, excluding normal wear and tear.", Source: "Rental Law"},
		{Term: "Maintenance Charges", Definition: "Additional monthly fee of Rs. 500 for common area upkeep, utilities, and building maintenance services.", Source: "Property Management"},
		{Term: "Subletting", Definition: "Practice of tenant renting out the property to another party, which is strictly prohibited in this agreement.", Source: "Tenancy Rights"},
		{Term: "Normal Wear and Tear", Definition: "Expected deterioration of property from ordinary residential use, for which tenant is not liable.", Source: "Property Law"},
		{Term: "Termination Notice", Definition: "One month written advance notice required by either party to end the rental agreement.", Source: "Contract Law"},
	},
	RiskAnalysis: `OVERALL RISK LEVEL: LOW - This rental agreement provides balanced protection for both landlord and tenant with clear terms and reasonable conditions.

**RENTAL TERMS ANALYSIS:**
The monthly rent of Rs. 5,000 plus Rs. 500 maintenance totaling Rs. 5,500 is reasonable for a two-bedroom property in Pollachi. The 25-month term provides stability for both parties.

**SECURITY DEPOSIT RISK:**
The Rs. 20,000 security deposit (approximately 3.6 months rent) is within standard range and provides adequate protection for the owner while remaining affordable for the tenant.

**TERMINATION PROVISIONS:**
The one-month notice period for termination is standard and fair. Both parties have equal rights to terminate, preventing one-sided control.

**RECOMMENDATIONS:**
1. Document property condition at move-in
2. Maintain records of all rent and maintenance payments
3. Provide written notice for any repairs needed
4. Keep receipts for any tenant-paid repairs for potential reimbursement`,
	ApplicableLaws: []analysis.ApplicableLaw{
		{Law: "Tamil Nadu Buildings (Lease and Rent Control) Act, 1960", Description: "Governs residential rental agreements in Tamil Nadu, including tenant rights, rent control, and eviction procedures."},
		{Law: "Indian Contract Act, 1872 - Sections 106-117", Description: "Defines lease agreements, obligations of lessor and lessee, and termination procedures for rental contracts."},
		{Law: "Transfer of Property Act, 1882 - Sections 105-111", Description: "Establishes legal framework for property leases, including rights and duties of landlords and tenants."},
		{Law: "Consumer Protection Act, 2019", Description: "Provides additional protection for tenants against unfair practices in rental agreements and housing services."},
	},
	Metadata: analysis.Metadata{
		analysis.MetaTimestamp:    "2025-11-02T15:45:00Z",
		analysis.MetaAnalysisType: "demo_residential_rental_analysis",
		analysis.MetaDocumentType: "Residential Rental Agreement",
		analysis.MetaTextLength:   6200,
		analysis.MetaConfidence:   0.96,
	},
}

var internshipRecord = &analysis.Record{
	DocumentSummary: `This is an Internship Confidentiality Agreement executed on November 5, 2025 between HariRam S (Intern) and Global Tech Pvt Limited, Coimbatore (Sponsor). The agreement establishes terms under which the intern will participate in an unpaid internship program to gain industry knowledge and experience.

The primary purpose of the agreement is to protect the company's confidential business information encountered during the internship. Confidential Information includes documents, records, data, designs, product plans, marketing plans, technical procedures, software, prototypes, and formulas in written, oral, electronic, or any other form.

The intern agrees to maintain strict confidentiality for 90 days from November 5, 2025. During this period confidential information cannot be disclosed to third parties or used for personal benefit, and at least reasonable care must be used to protect it.`,
	LegalTerms: []analysis.LegalTerm{
		{Term: "Confidential Information", Definition: "Any proprietary business information of the sponsor including documents, data, designs, plans, procedures, and prototypes shared during internship.", Source: "Information Technology Law"},
		{Term: "Non-Disclosure Obligation", Definition: "Legal duty to maintain secrecy of confidential information for 90 days and not share with unauthorized third parties.", Source: "Contract Law"},
		{Term: "Reasonable Care", Definition: "Standard level of protection that a prudent person would use to safeguard confidential information from unauthorized access.", Source: "Data Protection Law"},
		{Term: "Need to Know Basis", Definition: "Principle limiting access to confidential information only to individuals who require it for legitimate internship purposes.", Source: "Information Security"},
		{Term: "Personal Benefit", Definition: "Any advantage, profit, or gain that the intern might derive from unauthorized use of confidential information.", Source: "Intellectual Property Law"},
	},
	RiskAnalysis: `OVERALL RISK LEVEL: LOW-MODERATE - This internship NDA provides standard protections with reasonable terms for both parties.

**CONFIDENTIALITY SCOPE ANALYSIS:**
The agreement covers comprehensive confidential information including technical data, business plans, and proprietary processes. The definition is broad but reasonable for protecting company interests during internship.

**TIME LIMITATION RISK:**
The 90-day confidentiality period is relatively short compared to industry standards (typically 2-5 years). This benefits the intern while providing adequate protection for immediate business needs.

**ENFORCEMENT CONSIDERATIONS:**
As an unpaid internship, enforcement mechanisms may be limited. The agreement lacks specific penalty clauses or liquidated damages provisions.

**RECOMMENDATIONS:**
1. Document all confidential information accessed during internship
2. Maintain clear boundaries between personal and internship-related activities
3. Seek clarification on what constitutes "confidential" when uncertain
4. Keep confidential materials secure and limit access as specified`,
	ApplicableLaws: []analysis.ApplicableLaw{
		{Law: "Indian Contract Act, 1872 - Sections 27 & 124-147", Description: "Governs confidentiality agreements and restraint of trade provisions. Ensures NDAs don't unreasonably restrict post-internship employment."},
		{Law: "Information Technology Act, 2000 - Sections 43A & 72A", Description: "Addresses data protection and confidentiality of information in electronic form, applicable to digital confidential information."},
		{Law: "Copyright Act, 1957", Description: "Protects original works including software, documents, and creative materials that may be encountered during internship."},
		{Law: "Trade Secrets Protection under Common Law", Description: "Provides additional protection for proprietary business information and trade secrets disclosed during internship period."},
	},
	Metadata: analysis.Metadata{
		analysis.MetaTimestamp:    "2025-11-02T15:45:00Z",
		analysis.MetaAnalysisType: "demo_internship_nda_analysis",
		analysis.MetaDocumentType: "Internship Confidentiality Agreement",
		analysis.MetaTextLength:   5800,
		analysis.MetaConfidence:   0.94,
	},
}

var tamilRecord = &analysis.Record{
	DocumentSummary: `03-11-2022 அன்று தயாரிக்கப்பட்ட இந்த கடன் உறுதி பத்திரம் திரு அருண் குமார் (கடன் பெறுபவர்) மற்றும் திருமதி வித்யா ராமன் (கடன் கொடுப்பவர்) இடையே கையெழுத்தானது. இந்த உடன்படிக்கையின் முக்கிய நோக்கம் ₹2,50,000 தொகையை 18 மாத காலத்திற்கு 12% வட்டி விகிதத்தில் கடனாக வழங்குவதாகும். மாதாந்திர தவணைத் தொகை ₹15,750 ஆகும்.

திரு அருண் குமார் தனது சொந்த வீட்டை (T.S. No. 45/2B, ஆலங்குளம் கிராமம், பொள்ளாச்சி வட்டம்) பிணையமாக வழங்கியுள்ளார். தவணை செலுத்துவதில் தாமதம் ஏற்பட்டால் கூடுதல் 2% அபராத வட்டி விதிக்கப்படும்.`,
	LegalTerms: []analysis.LegalTerm{
		{Term: "கடன் உறுதி பத்திரம் (Loan Security Bond)", Definition: "கடன் பெறுபவர் மற்றும் கடன் கொடுப்பவர் இடையேயான சட்டபூர்வ ஒப்பந்தம், இதில் கடன் தொகை, வட்டி, மற்றும் திருப்பிச் செலுத்தும் விதிமுறைகள் குறிப்பிடப்படும்.", Source: "Indian Contract Act, 1872"},
		{Term: "பிணை சொத்து (Collateral Property)", Definition: "கடன் திருப்பிச் செலுத்த முடியாத பட்சத்தில் கடன் கொடுப்பவர் கைப்பற்றுவதற்கான உரிமை உள்ள சொத்து.", Source: "Transfer of Property Act, 1882"},
		{Term: "அபராத வட்டி (Penalty Interest)", Definition: "தவணை செலுத்துவதில் தாமதம் ஏற்பட்டால் அடிப்படை வட்டிக்கு கூடுதலாக விதிக்கப்படும் வட்டி.", Source: "Interest Act, 1978"},
		{Term: "மாதாந்திர தவணை (Monthly Installment)", Definition: "கடன் தொகை மற்றும் வட்டியை சேர்த்து மாதம்தோறும் செலுத்த வேண்டிய நிர்ணயிக்கப்பட்ட தொகை.", Source: "Banking Regulation Act"},
	},
	RiskAnalysis: `ஒட்டுமொத்த ஆபத்து நிலை: நடுத்தர - இந்த கடன் ஒப்பந்தத்தில் சில ஆபத்து காரணிகள் உள்ளன.

**வட்டி விகித பகுப்பாய்வு:**
12% வருட வட்டி விகிதம் தற்போதைய சந்தை நிலவரத்திற்கு ஏற்ப நியாயமானது. ஆனால் அபராத வட்டி 2% என்பது அதிகமாக இருக்கலாம்.

**பிணை சொத்து ஆபத்து:**
வீட்டை பிணையமாக வைப்பது அதிக ஆபத்து. கடன் திருப்பிச் செலுத்த முடியாவிட்டால் வீட்டை இழக்க நேரிடலாம்.

**பரிந்துரைகள்:**
1. மாதாந்திர வருமானத்தில் 30%க்கு மேல் தவணையாக செலுத்த வேண்டாம்
2. அபராத வட்டியை 1%க்கு குறைக்க பேச்சுவார்த்தை நடத்தவும்`,
	ApplicableLaws: []analysis.ApplicableLaw{
		{Law: "இந்திய ஒப்பந்த சட்டம், 1872 - பிரிவுகள் 10, 23, 124-147", Description: "கடன் ஒப்பந்தங்களின் செல்லுபடி, நிபந்தனைகள், மற்றும் அமலாக்கத்தை நிர்வகிக்கிறது."},
		{Law: "சொத்து பரிமாற்ற சட்டம், 1882 - பிரிவுகள் 58-104", Description: "அடமான மற்றும் பிணை சொத்து உரிமைகளை கட்டுப்படுத்துகிறது."},
		{Law: "வட்டி சட்டம், 1978", Description: "வட்டி விகிதங்கள் மற்றும் அபராத வட்டி விதிமுறைகளை நியமிக்கிறது."},
		{Law: "தமிழ்நாடு பதிவு சட்டம், 1908", Description: "₹100க்கு மேல் உள்ள கடன் ஒப்பந்தங்களை சட்டப்படி பதிவு செய்வதை கட்டாயமாக்குகிறது."},
	},
	Metadata: analysis.Metadata{
		analysis.MetaTimestamp:    "2025-11-02T16:30:00Z",
		analysis.MetaAnalysisType: "demo_tamil_loan_analysis",
		analysis.MetaDocumentType: "Tamil Loan Security Bond",
		analysis.MetaTextLength:   6200,
		analysis.MetaConfidence:   0.92,
	},
}
