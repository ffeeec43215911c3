// Package mask hides most of a contact value or secret before it is shown to
// someone who should not see all of it: admin user tables, account summaries,
// audit log entries, log lines.
//
// Maskers are applied once to a canonical raw value. They never panic; input
// they cannot interpret is returned unchanged (e-mail) or replaced by a fixed
// mask (phone), so the visible part never grows beyond what is documented
// for valid input.
//
//	mask.Email("john.doe@example.com")        // "jo***@example.com"
//	mask.EmailMinimal("john.doe@example.com") // "j***@example.com"
//	mask.Phone("+1 415 555 0123")             // "****0123"
//	mask.PhonePartial("14155550123")          // "14*******23"
//
// Masking is not encryption. It only reduces what is visible.
package mask
