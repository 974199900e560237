// File path: internal/registry/registry.go

// Package registry holds the static tables that tie ISO 20022 message codes
// to their defining PDF documents: human-readable definitions, the source
// file per message family, and the table-of-contents page numbers for each
// section of a message's specification chapter. The tables are data only;
// page-range arithmetic lives in the engine.
package registry

import "strings"

// Section names one of the four standard parts of a message's specification
// chapter. The declaration order is load-bearing: a section's nominal end
// boundary is the next section's start page.
type Section string

const (
	Functionality Section = "functionality"
	Structure     Section = "structure"
	Constraints   Section = "constraints"
	Blocks        Section = "blocks"
)

// SectionOrder lists the sections in document order.
var SectionOrder = []Section{Functionality, Structure, Constraints, Blocks}

// Next returns the section that follows s in document order. The boolean is
// false for the last section and for unknown values.
func (s Section) Next() (Section, bool) {
	for i, sec := range SectionOrder {
		if sec == s && i < len(SectionOrder)-1 {
			return SectionOrder[i+1], true
		}
	}
	return "", false
}

// Valid reports whether s is one of the four known sections.
func (s Section) Valid() bool {
	for _, sec := range SectionOrder {
		if sec == s {
			return true
		}
	}
	return false
}

var definitions = map[string]string{
	"pain.001": "CustomerCreditTransferInitiation - customer-to-bank credit transfer initiation.",
	"pain.002": "CustomerPaymentStatusReport - status on previously sent customer payments.",
	"pain.007": "CustomerPaymentReversal - reversal of a previously executed customer payment.",
	"pain.008": "CustomerDirectDebitInitiation - direct debit initiation from customer to bank.",

	"pacs.002": "FIToFIPaymentStatusReport - interbank payment status.",
	"pacs.003": "FIToFICustomerDirectDebit - interbank customer direct debit.",
	"pacs.004": "PaymentReturn - return of an unaccepted or rejected payment.",
	"pacs.007": "FIToFIPaymentReversal - reversal of interbank payments.",
	"pacs.008": "FIToFICustomerCreditTransfer - interbank customer credit transfer.",
	"pacs.009": "FinancialInstitutionCreditTransfer - FI to FI credit transfer.",
	"pacs.010": "FinancialInstitutionDirectDebit - FI to FI direct debit.",
	"pacs.028": "FIToFIPaymentStatusRequest - status inquiry for an interbank payment.",

	"camt.026": "UnableToApply - payment cannot be applied and requires investigation.",
	"camt.027": "ClaimNonReceipt - used to claim non-receipt of a payment.",
	"camt.028": "AdditionalPaymentInformation - additional information about a payment.",
	"camt.029": "ResolutionOfInvestigation - outcome of an investigation case.",
	"camt.030": "NotificationOfCaseAssignment - notification of a new/changed case assignment.",
	"camt.031": "RejectInvestigation - rejection of an investigation.",
	"camt.032": "CancelCaseAssignment - cancellation of case assignment.",
	"camt.033": "RequestForDuplicate - request for duplicate information.",
	"camt.034": "Duplicate - duplicate information message.",
	"camt.035": "ProprietaryFormatInvestigation - investigation message in proprietary format.",
	"camt.036": "DebitAuthorisationResponse - response to debit authorisation request.",
	"camt.037": "DebitAuthorisationRequest - request for debit authorisation.",
	"camt.038": "CaseStatusReportRequest - request for case status report.",
	"camt.039": "CaseStatusReport - case status information.",
	"camt.055": "CustomerPaymentCancellationRequest - cancellation request from customer.",
	"camt.056": "FIToFIPaymentCancellationRequest - interbank payment cancellation request.",
	"camt.087": "RequestToModifyPayment - request to modify a payment.",
}

// One PDF per message family, shared by every code in that family.
var familyFiles = map[string]string{
	"pain": "pain_messages.pdf",
	"pacs": "pacs_messages.pdf",
	"camt": "camt_messages.pdf",
}

// sectionStarts holds the TOC page where each section of a message's chapter
// begins, 1-indexed.
var sectionStarts = map[string]map[Section]int{
	"pacs.002": {Functionality: 6, Structure: 7, Constraints: 11, Blocks: 15},
	"pacs.003": {Functionality: 79, Structure: 80, Constraints: 83, Blocks: 87},
	"pacs.004": {Functionality: 145, Structure: 146, Constraints: 157, Blocks: 164},
	"pacs.007": {Functionality: 353, Structure: 354, Constraints: 359, Blocks: 363},
	"pacs.008": {Functionality: 440, Structure: 441, Constraints: 446, Blocks: 451},
	"pacs.009": {Functionality: 520, Structure: 521, Constraints: 528, Blocks: 535},
	"pacs.010": {Functionality: 653, Structure: 654, Constraints: 655, Blocks: 657},
	"pacs.028": {Functionality: 686, Structure: 687, Constraints: 690, Blocks: 692},

	"pain.001": {Functionality: 4, Structure: 6, Constraints: 10, Blocks: 14},
	"pain.002": {Functionality: 78, Structure: 79, Constraints: 84, Blocks: 87},
	"pain.007": {Functionality: 163, Structure: 164, Constraints: 168, Blocks: 171},
	"pain.008": {Functionality: 239, Structure: 240, Constraints: 244, Blocks: 246},

	"camt.026": {Functionality: 8, Structure: 10, Constraints: 17, Blocks: 19},
	"camt.027": {Functionality: 138, Structure: 140, Constraints: 146, Blocks: 148},
	"camt.028": {Functionality: 266, Structure: 268, Constraints: 277, Blocks: 279},
	"camt.029": {Functionality: 433, Structure: 435, Constraints: 451, Blocks: 455},
	"camt.030": {Functionality: 716, Structure: 718, Constraints: 719, Blocks: 719},
	"camt.031": {Functionality: 734, Structure: 735, Constraints: 736, Blocks: 736},
	"camt.032": {Functionality: 746, Structure: 747, Constraints: 747, Blocks: 748},
	"camt.033": {Functionality: 758, Structure: 759, Constraints: 759, Blocks: 760},
	"camt.034": {Functionality: 769, Structure: 770, Constraints: 770, Blocks: 771},
	"camt.035": {Functionality: 781, Structure: 782, Constraints: 782, Blocks: 783},
	"camt.036": {Functionality: 793, Structure: 794, Constraints: 794, Blocks: 795},
	"camt.037": {Functionality: 806, Structure: 808, Constraints: 814, Blocks: 816},
	"camt.038": {Functionality: 930, Structure: 931, Constraints: 931, Blocks: 932},
	"camt.039": {Functionality: 941, Structure: 943, Constraints: 944, Blocks: 944},
	"camt.055": {Functionality: 959, Structure: 961, Constraints: 966, Blocks: 969},
	"camt.056": {Functionality: 1057, Structure: 1060, Constraints: 1064, Blocks: 1067},
	"camt.087": {Functionality: 1144, Structure: 1147, Constraints: 1155, Blocks: 1157},
}

// nextMessageStarts holds the page where the next message's chapter begins,
// which bounds the last section of each chapter.
var nextMessageStarts = map[string]int{
	"pacs.002": 79, "pacs.003": 145, "pacs.004": 353, "pacs.007": 440,
	"pacs.008": 520, "pacs.009": 653, "pacs.010": 686, "pacs.028": 743,
	"pain.001": 78, "pain.002": 163, "pain.007": 239, "pain.008": 309,
	"camt.026": 138, "camt.027": 266, "camt.028": 433, "camt.029": 716,
	"camt.030": 734, "camt.031": 746, "camt.032": 758, "camt.033": 769,
	"camt.034": 781, "camt.035": 793, "camt.036": 806, "camt.037": 930,
	"camt.038": 941, "camt.039": 959, "camt.055": 1057, "camt.056": 1144,
	"camt.087": 1291,
}

// Known reports whether code is a registered message code.
func Known(code string) bool {
	_, ok := definitions[code]
	return ok
}

// Codes returns every registered message code, unordered.
func Codes() []string {
	out := make([]string, 0, len(definitions))
	for code := range definitions {
		out = append(out, code)
	}
	return out
}

// Definition returns the human-readable definition for a message code.
func Definition(code string) (string, bool) {
	def, ok := definitions[code]
	return def, ok
}

// FileFor returns the PDF filename defining the given message code. The
// lookup is by family prefix, so it can succeed for codes the registry does
// not otherwise know; callers validate codes separately.
func FileFor(code string) (string, bool) {
	family, _, found := strings.Cut(code, ".")
	if !found {
		return "", false
	}
	file, ok := familyFiles[family]
	return file, ok
}

// StartPage returns the TOC start page for a (code, section) pair.
func StartPage(code string, section Section) (int, bool) {
	pages, ok := sectionStarts[code]
	if !ok {
		return 0, false
	}
	page, ok := pages[section]
	return page, ok
}

// NextMessageStart returns the page on which the chapter after code begins.
func NextMessageStart(code string) (int, bool) {
	page, ok := nextMessageStarts[code]
	return page, ok
}
