package controllers

import (
	"hotel-management/services"
	"hotel-management/utils"
)

// bookingRequest is the multipart form shared by POST /makeReservation and POST /makeStayRecord.
type bookingRequest struct {
	RoomID   uint   `json:"room_id" form:"room_id"`
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	CheckIn  string `json:"check_in" form:"check_in"`
	CheckOut string `json:"check_out" form:"check_out"`
	Adults   int    `json:"adults" form:"adults"`
	Children int    `json:"children" form:"children"`
}

func (r bookingRequest) input(idPicture string) (services.BookingInput, error) {
	in := services.BookingInput{
		RoomID: r.RoomID,
		Guest: services.GuestInput{
			Name:      r.Name,
			Email:     r.Email,
			Phone:     r.Phone,
			IDPicture: idPicture,
		},
		Adults:   r.Adults,
		Children: r.Children,
	}
	var err error
	if in.CheckIn, err = utils.ParseDate("check_in", r.CheckIn); err != nil {
		return in, err
	}
	if in.CheckOut, err = utils.ParseDate("check_out", r.CheckOut); err != nil {
		return in, err
	}
	return in, nil
}

type bookingUpdateRequest struct {
	RoomID   *uint   `json:"room_id" form:"room_id"`
	CheckIn  *string `json:"check_in" form:"check_in"`
	CheckOut *string `json:"check_out" form:"check_out"`
	Adults   *int    `json:"adults" form:"adults"`
	Children *int    `json:"children" form:"children"`
}

func (r bookingUpdateRequest) update() (services.BookingUpdate, error) {
	upd := services.BookingUpdate{RoomID: r.RoomID, Adults: r.Adults, Children: r.Children}
	var err error
	if upd.CheckIn, err = utils.OptionalDate("check_in", r.CheckIn); err != nil {
		return upd, err
	}
	if upd.CheckOut, err = utils.OptionalDate("check_out", r.CheckOut); err != nil {
		return upd, err
	}
	return upd, nil
}

func stayFilter(roomID, guestID uint) services.StayFilter {
	return services.StayFilter{RoomID: roomID, GuestID: guestID}
}
