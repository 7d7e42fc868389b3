package parse

import "testing"

func TestDefaultClassify(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want Verdict
	}{
		{
			name: "debit confirmation accepted",
			msg:  "Rs.500 debited from A/c XX1234 to SWIGGY",
			want: VerdictAccept,
		},
		{
			name: "credit confirmation accepted",
			msg:  "Rs.25,000 credited to your A/c XX9876",
			want: VerdictAccept,
		},
		{
			name: "otp rejected",
			msg:  "123456 is your OTP for txn of Rs.500. Do not share.",
			want: VerdictReject,
		},
		{
			name: "pre-approved offer rejected despite amount",
			msg:  "Pre-approved personal loan of up to Rs.5,00,000 for you! Apply now.",
			want: VerdictReject,
		},
		{
			name: "payment request rejected",
			msg:  "John has requested money Rs.750 via UPI. Approve in app.",
			want: VerdictReject,
		},
		{
			name: "bill reminder rejected",
			msg:  "Your electricity bill is due on 15/02/24. Amount Rs.1,430.",
			want: VerdictReject,
		},
		{
			name: "deduction accepted",
			msg:  "Rs.199.00 deducted from your wallet for Jan renewal",
			want: VerdictAccept,
		},
		{
			name: "refund accepted",
			msg:  "Refund of Rs.1,250.00 processed to your card for order 118822",
			want: VerdictAccept,
		},
		{
			name: "no transaction verb rejected",
			msg:  "Welcome to mobile banking. Your registration is complete.",
			want: VerdictReject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := defaultClassify(tt.msg); got != tt.want {
				t.Errorf("defaultClassify(%q) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}
