// Package validate holds the pure field predicates shared by account and
// diary operations.
package validate

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9]+@[a-z]+\.[a-z]{2,3}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{3}-[0-9]{4}-[0-9]{4}$`)
	datePattern  = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
)

var genderTypes = map[string]struct{}{
	"MALE":   {},
	"FEMALE": {},
	"Etc.":   {},
}

var bloodTypes = map[string]struct{}{
	"AB":   {},
	"A":    {},
	"B":    {},
	"O":    {},
	"Etc.": {},
}

var mbtiTypes = map[string]struct{}{
	"INFP": {}, "INFJ": {}, "INTP": {}, "INTJ": {},
	"ISFP": {}, "ISFJ": {}, "ISTP": {}, "ISTJ": {},
	"ENFP": {}, "ENFJ": {}, "ENTP": {}, "ENTJ": {},
	"ESFP": {}, "ESFJ": {}, "ESTP": {}, "ESTJ": {},
}

// EmailAddress reports whether the address matches the accepted shape.
func EmailAddress(email string) bool {
	return emailPattern.MatchString(email)
}

// PhoneNumber accepts the 3-4-4 dashed digit format.
func PhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone)
}

// Date accepts YYYY-MM-DD.
func Date(date string) bool {
	return datePattern.MatchString(date)
}

// Gender reports whether the value is a known gender code.
func Gender(gender string) bool {
	_, ok := genderTypes[gender]
	return ok
}

// MbtiType reports whether the value is one of the 16 MBTI codes.
func MbtiType(mbti string) bool {
	_, ok := mbtiTypes[mbti]
	return ok
}

// BloodType reports whether the value is a known blood type code.
func BloodType(blood string) bool {
	_, ok := bloodTypes[blood]
	return ok
}
