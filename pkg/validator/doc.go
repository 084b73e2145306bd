// Package validator checks user-entered form fields such as email addresses,
// personal names, phone numbers, passwords, postal codes and Spanish national
// ID numbers (DNI), and reports a human-readable reason when a value is
// rejected.
//
// Every check trims surrounding whitespace first; a blank value always fails
// with ErrEmptyField. An absent value is the empty string: the convenience
// and batch forms take plain strings, and ValidateOptional accepts a nil
// *string for callers that model missing input explicitly.
//
// The remaining rules are fixed regular expressions, plus the DNI control
// letter (the eight digits modulo 23 index into "TRWAGMYFPDXBNJZSQVHLCKE").
// Custom kinds match a caller-supplied pattern case-insensitively anywhere in
// the text, so an unanchored pattern needs only one match; a pattern that does
// not compile never matches. Name and Surname compare the NFC form of the text
// so decomposed accents count as one letter; every other rule sees the
// trimmed text unchanged.
//
// # Usage
//
// Strict form, returning an Error that works with errors.Is:
//
//	if err := validator.Validate(input, validator.Email); err != nil {
//	    if errors.Is(err, validator.ErrEmptyField) {
//	        // ...
//	    }
//	    fmt.Println(err) // "The email address is not valid"
//	}
//
// Convenience form, never returning an error:
//
//	o := validator.IsNameValid("José García")
//	// o.Passed == true, o.Message == ""
//
// Batch form, one result per entry in input order:
//
//	results := validator.ValidateForm([]validator.FormEntry{
//	    {Text: email, Kind: validator.Email},
//	    {Text: zip, Kind: validator.PostalCode},
//	})
//
// Named fields aggregated into a single error:
//
//	err := validator.Apply(
//	    validator.Field("email", email, validator.Email),
//	    validator.Field("dni", dni, validator.NationalID),
//	)
//	if errs := validator.ExtractFieldErrors(err); errs != nil {
//	    // errs.Get("email"), errs.Fields(), ...
//	}
//
// # Concurrency
//
// Validators carry no mutable state. The package-level functions share a
// default Validator that logs nothing; use New with WithLogger to get debug
// output.
package validator
