package dto_test

import (
	"testing"

	"haven/internal/domains/inquiry/model"
	"haven/internal/domains/inquiry/model/dto"
	"haven/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestCreateInquiryRequest_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateInquiryRequest
		want     dto.CreateInquiryRequest
		wantErr  bool
		wantCode int
	}{
		{
			name: "strips markup and formats phone",
			req: dto.CreateInquiryRequest{
				Name:        "  <b>Ada</b> ",
				Phone:       "0803 123 4567",
				InquiryType: "Event booking",
				Message:     "Hello <script>alert(1)</script>there",
			},
			want: dto.CreateInquiryRequest{
				Name:        "Ada",
				Phone:       "+2348031234567",
				InquiryType: "Event booking",
				Message:     "Hello there",
			},
		},
		{
			name: "keeps ampersands readable",
			req: dto.CreateInquiryRequest{
				Name:        "Tom & Jerry",
				Phone:       "+2348031234567",
				InquiryType: "Stay",
				Message:     "Room for 2",
			},
			want: dto.CreateInquiryRequest{
				Name:        "Tom & Jerry",
				Phone:       "+2348031234567",
				InquiryType: "Stay",
				Message:     "Room for 2",
			},
		},
		{
			name: "markup only name is rejected",
			req: dto.CreateInquiryRequest{
				Name:        "<img src=x>",
				Phone:       "+2348031234567",
				InquiryType: "Stay",
				Message:     "Hi",
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name:     "empty form is rejected",
			req:      dto.CreateInquiryRequest{},
			wantErr:  true,
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Normalize("NG")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, tt.req)
		})
	}
}

func TestCreateInquiryRequest_ToModel(t *testing.T) {
	req := dto.CreateInquiryRequest{Name: "Ada", Phone: "+2348031234567", InquiryType: "Stay", Message: "Hi"}

	inquiry := req.ToModel("guest")

	assert.NotEmpty(t, inquiry.ID)
	assert.Equal(t, model.StatusNew, inquiry.Status)
	assert.Equal(t, "guest", inquiry.CreatedBy)
}

func TestInquiryStatsResponse_Set(t *testing.T) {
	var res dto.InquiryStatsResponse

	res.Set(model.StatusNew, 3)
	res.Set(model.StatusRead, 2)
	res.Set(model.StatusResponded, 1)
	res.Set(model.StatusArchived, 4)
	res.Set("unknown", 9)

	assert.Equal(t, dto.InquiryStatsResponse{New: 3, Read: 2, Responded: 1, Archived: 4}, res)
}

func TestInquiryCreatedEvent_FromModel(t *testing.T) {
	var event dto.InquiryCreatedEvent
	event.FromModel(model.Inquiry{ID: "inq-1", Name: "Ada", Message: "Hi"})

	assert.Equal(t, "inq-1", event.ID)
	assert.Equal(t, "Ada", event.Name)
	assert.Equal(t, "Hi", event.Message)
}
