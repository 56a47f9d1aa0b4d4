// Package keywords holds the bilingual lexicons used to classify Thai bank
// statement text. The slices are process-wide constants; callers must never
// mutate them.
package keywords

// Withdrawal marks a line as a debit when matched (and no deposit keyword matches).
var Withdrawal = []string{
	// KBank - English
	"Transfer Withdrawal",
	"Debit Card Spending",
	"Direct Debit",
	"Annual Debit Card Fee",
	"Payment",
	"PromptPay Transfer",
	"Bill Payment",
	"Fee",
	// KBank - Thai
	"โอนเงิน",
	"ชำระค่าสินค้า",
	"หักบัญชี",
	"ค่าธรรมเนียม",
	"ชำระเงิน",
	"จ่ายบิล",
	"ถอนเงิน",
	// BBL - English
	"TRF TO OTH BK",
	"PMT. PROMPTPAY",
	"TRF. PROMPTPAY",
	"BILL PAY E-CHN",
	"BILL PAY",
}

// Deposit marks a line as a credit. Deposit keywords win over withdrawal
// keywords when both match, so refunds and corrections classify as credits.
var Deposit = []string{
	// KBank - English
	"Transfer Deposit",
	"Payment Received",
	"Error Correction",
	"Interest",
	"Refund",
	// KBank - Thai
	"รับโอนเงิน",
	"รับเงิน",
	"ดอกเบี้ย",
	"คืนเงิน",
	"เงินเข้า",
	// BBL - English
	"TRF FR OTH BK",
	"CASH DEP NBK",
	"CASH DEP",
	"TR FR/TO S/A",
}

// BalanceBegin labels an opening-balance header line.
var BalanceBegin = []string{
	"Beginning Balance",
	"ยอดยกมา",
	"B/F", // BBL: Brought Forward
}

// BalanceEnd labels a closing-balance header line.
var BalanceEnd = []string{
	"Ending Balance",
	"ยอดยกไป",
}

// Channel markers, scanned in order; first match wins.
var Channel = []string{
	// KBank
	"K PLUS",
	"K-Plus",
	"EDC",
	"ATM",
	"Internet/Mobile",
	"Automatic Transfer",
	"Online Direct Debit",
	"Counter",
	"Cheque",
	// BBL
	"mPhone",
	"Gtway",
}

// ThaiHeader lists Thai header/label phrases used for language detection.
// Transaction descriptions are bilingual regardless of statement language,
// so only header labels are counted.
var ThaiHeader = []string{
	"ยอดยกมา",         // Beginning balance
	"ยอดยกไป",         // Ending balance
	"รอบระหว่างวันที่", // Period
	"ชื่อบัญชี",        // Account name
	"เลขที่บัญชี",      // Account number
	"ยอดรวมถอน",       // Total withdrawal
	"ยอดรวมฝาก",       // Total deposit
	"ยอดคงเหลือ",      // Balance
	"รายละเอียด",      // Details
}

// EnglishHeader is the parallel English header/label list.
var EnglishHeader = []string{
	"Beginning Balance",
	"Ending Balance",
	"Period",
	"Account Number",
	"Account Name",
	"Total Withdrawal",
	"Total Deposit",
	"Outstanding Balance",
	"Descriptions",
}
