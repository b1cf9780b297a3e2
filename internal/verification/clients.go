package verification

import (
	"context"
	"time"

	"loangate/pkg/requestcontext"
)

// GSTClient queries a GST registry.
type GSTClient interface {
	Verify(ctx context.Context, gstNumber string) (GSTResult, error)
}

// PANClient queries a PAN registry.
type PANClient interface {
	Verify(ctx context.Context, panNumber string) (PANResult, error)
}

// Demo identifiers recognized by the mock registries, lifted from the
// FameScore sample report.
const (
	DemoGSTNumber = "09AADCF8429L1Z4"
	DemoPANNumber = "AADCF8429L"

	mockMethod = "mock-api"
)

// PANFromGST extracts the PAN embedded in a GST identification number.
// GSTIN layout: 2-digit state code, 10-character PAN, entity code, "Z",
// checksum. Short inputs return the empty string.
func PANFromGST(gstNumber string) string {
	if len(gstNumber) < 12 {
		return ""
	}
	return gstNumber[2:12]
}

// MockGSTClient serves a constant lookup table with a configurable latency to
// mimic a real registry call.
type MockGSTClient struct {
	Latency time.Duration
}

func (c MockGSTClient) Verify(ctx context.Context, gstNumber string) (GSTResult, error) {
	time.Sleep(c.Latency)
	now := requestcontext.Now(ctx)

	if gstNumber == DemoGSTNumber {
		return GSTResult{
			GSTNumber:          gstNumber,
			BusinessName:       "FINAGG TECHNOLOGIES PRIVATE LIMITED",
			TradeName:          "FINAGG TECHNOLOGIES PRIVATE LIMITED",
			Constitution:       "Private Limited",
			Address:            "C 1,SECTOR 16,Noida,Uttar Pradesh-201301",
			DateOfRegistration: "2021-02-21",
			AnnualTurnover:     24148440.33,
			FilingCompliance:   0.84,
			PANNumber:          DemoPANNumber,
			CreditScore:        "CMR-2",
			ExistingLoans:      2710443,
			Verified:           true,
			VerificationDate:   now,
			VerificationMethod: mockMethod,
		}, nil
	}

	return GSTResult{
		GSTNumber:        gstNumber,
		Verified:         false,
		Error:            "GST number not found. Use " + DemoGSTNumber + " for demo.",
		VerificationDate: now,
	}, nil
}

// MockPANClient serves a constant lookup table with a configurable latency.
type MockPANClient struct {
	Latency time.Duration
}

func (c MockPANClient) Verify(ctx context.Context, panNumber string) (PANResult, error) {
	time.Sleep(c.Latency)
	now := requestcontext.Now(ctx)

	if panNumber == DemoPANNumber {
		return PANResult{
			PANNumber:        panNumber,
			Name:             "FINAGG TECHNOLOGIES PRIVATE LIMITED",
			Status:           "Active",
			Verified:         true,
			VerificationDate: now,
		}, nil
	}

	return PANResult{
		PANNumber:        panNumber,
		Verified:         false,
		Error:            "PAN not found. Use " + DemoPANNumber + " for demo.",
		VerificationDate: now,
	}, nil
}
