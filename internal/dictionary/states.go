package dictionary

import "sort"

// GST state codes: the 2-digit prefix embedded in every GSTIN.
var states = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"26": "Dadra and Nagar Haveli and Daman and Diu",
	"27": "Maharashtra",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
	"38": "Ladakh",
}

// State is one entry of the GST state dictionary.
type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// States returns the full dictionary sorted by code.
func States() []State {
	codes := make([]string, 0, len(states))
	for code := range states {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	out := make([]State, 0, len(codes))
	for _, code := range codes {
		out = append(out, State{Code: code, Name: states[code]})
	}
	return out
}

// StateName resolves a 2-digit GST state code to its state name.
func StateName(code string) (string, bool) {
	name, ok := states[code]
	return name, ok
}

// StateCode resolves a state name to its 2-digit GST code.
func StateCode(name string) (string, bool) {
	for code, n := range states {
		if n == name {
			return code, true
		}
	}
	return "", false
}
