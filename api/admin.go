package api

import (
	"bufio"
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	internalS3 "r66slot/adapters/s3"
	"r66slot/api/openapi"
	"r66slot/auction"
)

const adminCreator = "admin"

// Create an auction
// (POST /admin/auctions)
func (impl *ServerImpl) PostAdminAuction(ctx context.Context, request openapi.PostAdminAuctionRequestObject) (openapi.PostAdminAuctionResponseObject, error) {
	body := request.Body
	now := impl.clock()
	// 處理拍賣描述
	if body.DescriptionHTML != nil {
		body.DescriptionHTML = lo.ToPtr(impl.htmlChecker.Sanitize(*body.DescriptionHTML))
	}

	created, err := impl.engine.CreateAuction(ctx, now, auction.NewAuction{
		Title:            body.Title,
		Description:      body.Description,
		DescriptionHTML:  body.DescriptionHTML,
		CategoryID:       body.CategoryID,
		Brand:            body.Brand,
		Scale:            body.Scale,
		Condition:        lo.FromPtr(body.Condition),
		Images:           lo.FromPtr(body.Images),
		StartingPrice:    body.StartingPrice,
		ReservePrice:     body.ReservePrice,
		BidIncrement:     lo.FromPtr(body.BidIncrement),
		StartsAt:         lo.FromPtrOr(body.StartsAt, now),
		EndsAt:           body.EndsAt,
		AntiSnipeSeconds: body.AntiSnipeSeconds,
		Featured:         lo.FromPtr(body.Featured),
		Draft:            lo.FromPtr(body.Draft),
		CreatedBy:        adminCreator,
	})
	if err != nil {
		return nil, err
	}
	return openapi.PostAdminAuction201JSONResponse{
		Body: *created,
		Headers: openapi.PostAdminAuction201ResponseHeaders{
			Location: "/auctions/" + created.ID.String(),
		},
	}, nil
}

// Delete a draft or cancelled auction
// (DELETE /admin/auctions/{auctionID})
func (impl *ServerImpl) DeleteAdminAuction(ctx context.Context, request openapi.DeleteAdminAuctionRequestObject) (openapi.DeleteAdminAuctionResponseObject, error) {
	if err := impl.engine.DeleteAuction(ctx, request.AuctionID); err != nil {
		return nil, err
	}
	return openapi.DeleteAdminAuction204Response{}, nil
}

// Cancel an auction
// (POST /admin/auctions/{auctionID}/cancel)
func (impl *ServerImpl) PostAdminAuctionCancel(ctx context.Context, request openapi.PostAdminAuctionCancelRequestObject) (openapi.PostAdminAuctionCancelResponseObject, error) {
	if err := impl.engine.CancelAuction(ctx, impl.clock(), request.AuctionID); err != nil {
		return nil, err
	}
	return openapi.PostAdminAuctionCancel204Response{}, nil
}

// Upload an auction image
// (POST /admin/auctions/{auctionID}/images)
func (impl *ServerImpl) PostAdminAuctionImage(ctx context.Context, request openapi.PostAdminAuctionImageRequestObject) (openapi.PostAdminAuctionImageResponseObject, error) {
	now := impl.clock()

	// 檢查拍賣是否存在
	a, err := impl.engine.GetAuction(ctx, request.AuctionID.String())
	if err != nil {
		return nil, err
	}
	// 檢查上傳頻率
	count, err := impl.engine.CountRecentImages(ctx, request.AuctionID, now.Add(-imageUploadWindow))
	if err != nil {
		return nil, err
	}
	if count >= imageUploadLimit {
		return openapi.PostAdminAuctionImage429JSONResponse{Error: "Too many uploads, try again later"}, nil
	}

	// 空的請求內容不上傳
	if request.Body == nil {
		return openapi.PostAdminAuctionImage400JSONResponse{Error: "File is required"}, nil
	}
	file := bufio.NewReader(request.Body)
	if _, err := file.Peek(1); err != nil {
		return openapi.PostAdminAuctionImage400JSONResponse{Error: "File is required"}, nil
	}

	object, err := impl.uploader.UploadAuctionImage(ctx, request.AuctionID, file)
	if err != nil {
		var limitErr *internalS3.ReachLimitError
		switch {
		case errors.As(err, &limitErr):
			return openapi.PostAdminAuctionImage413JSONResponse{
				Error: fmt.Sprintf("File must not be larger than %s", internalS3.FormatBytes(limitErr.MaxBytes)),
			}, nil
		case errors.Is(err, internalS3.ErrUnsupportedImage):
			return openapi.PostAdminAuctionImage415JSONResponse{Error: "Only JPEG, PNG, GIF and WebP images are allowed"}, nil
		}
		return nil, err
	}

	alt := lo.FromPtr(request.Params.Alt)
	if alt == "" {
		alt = a.Title
	}
	image, err := impl.engine.AttachImage(ctx, now, request.AuctionID, auction.UploadedImage{
		URL:      object.URL,
		MIMEType: object.MIMEType,
		Size:     object.Size,
		Alt:      alt,
	})
	if err != nil {
		return nil, err
	}
	return openapi.PostAdminAuctionImage201JSONResponse(*image), nil
}

// Mark the payment of an ended auction as succeeded
// (POST /admin/auctions/{auctionID}/payment)
func (impl *ServerImpl) PostAdminAuctionPayment(ctx context.Context, request openapi.PostAdminAuctionPaymentRequestObject) (openapi.PostAdminAuctionPaymentResponseObject, error) {
	if request.Body.Reference == "" {
		return openapi.PostAdminAuctionPayment400JSONResponse{Error: "Payment reference is required"}, nil
	}
	payment, err := impl.engine.MarkPaymentSucceeded(ctx, impl.clock(), request.AuctionID, request.Body.Reference)
	if err != nil {
		return nil, err
	}
	return openapi.PostAdminAuctionPayment200JSONResponse(*payment), nil
}

// Ban or unban a bidder
// (PUT /admin/bidders/{bidderID}/ban)
func (impl *ServerImpl) PutAdminBidderBan(ctx context.Context, request openapi.PutAdminBidderBanRequestObject) (openapi.PutAdminBidderBanResponseObject, error) {
	if request.Body.Banned == nil {
		return openapi.PutAdminBidderBan400JSONResponse{Error: "banned is required"}, nil
	}
	banned := *request.Body.Banned
	if err := impl.engine.SetBidderBanned(ctx, request.BidderID, banned); err != nil {
		return nil, err
	}
	return openapi.PutAdminBidderBan200JSONResponse{Banned: banned}, nil
}

// Get auction statistics
// (GET /admin/auctions/stats)
func (impl *ServerImpl) GetAdminStats(ctx context.Context, request openapi.GetAdminStatsRequestObject) (openapi.GetAdminStatsResponseObject, error) {
	stats, err := impl.engine.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return openapi.GetAdminStats200JSONResponse(stats), nil
}
