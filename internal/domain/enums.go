package domain

type CampusArea string

const (
	CampusAreaWest        CampusArea = "WEST"
	CampusAreaNorth       CampusArea = "NORTH"
	CampusAreaCentral     CampusArea = "CENTRAL"
	CampusAreaCollegetown CampusArea = "COLLEGETOWN"
	CampusAreaNone        CampusArea = "NONE"
)

type PaymentMethod string

const (
	PaymentMealSwipe PaymentMethod = "MEAL_SWIPE"
	PaymentBRB       PaymentMethod = "BRB"
	PaymentCard      PaymentMethod = "CARD"
	PaymentCash      PaymentMethod = "CASH"
	PaymentFree      PaymentMethod = "FREE"
)

type EateryType string

const (
	EateryTypeDiningRoom       EateryType = "DINING_ROOM"
	EateryTypeCafe             EateryType = "CAFE"
	EateryTypeCoffeeShop       EateryType = "COFFEE_SHOP"
	EateryTypeFoodCourt        EateryType = "FOOD_COURT"
	EateryTypeConvenienceStore EateryType = "CONVENIENCE_STORE"
	EateryTypeCart             EateryType = "CART"
	EateryTypeFoodTruck        EateryType = "FOOD_TRUCK"
	EateryTypeGeneral          EateryType = "GENERAL"
	EateryTypeCommunityFridge  EateryType = "COMMUNITY_FRIDGE"
)

type EventType string

const (
	EventTypeBreakfast EventType = "BREAKFAST"
	EventTypeBrunch    EventType = "BRUNCH"
	EventTypeLunch     EventType = "LUNCH"
	EventTypeDinner    EventType = "DINNER"
	EventTypeLateNight EventType = "LATE_NIGHT"
	EventTypeCafe      EventType = "CAFE"
	EventTypePants     EventType = "PANTS"
	EventTypeOpen      EventType = "OPEN"
	EventTypeGeneral   EventType = "GENERAL"
)

var campusAreas = map[CampusArea]struct{}{
	CampusAreaWest: {}, CampusAreaNorth: {}, CampusAreaCentral: {}, CampusAreaCollegetown: {}, CampusAreaNone: {},
}

var paymentMethods = map[PaymentMethod]struct{}{
	PaymentMealSwipe: {}, PaymentBRB: {}, PaymentCard: {}, PaymentCash: {}, PaymentFree: {},
}

var eateryTypes = map[EateryType]struct{}{
	EateryTypeDiningRoom: {}, EateryTypeCafe: {}, EateryTypeCoffeeShop: {}, EateryTypeFoodCourt: {},
	EateryTypeConvenienceStore: {}, EateryTypeCart: {}, EateryTypeFoodTruck: {}, EateryTypeGeneral: {},
	EateryTypeCommunityFridge: {},
}

var eventTypes = map[EventType]struct{}{
	EventTypeBreakfast: {}, EventTypeBrunch: {}, EventTypeLunch: {}, EventTypeDinner: {},
	EventTypeLateNight: {}, EventTypeCafe: {}, EventTypePants: {}, EventTypeOpen: {}, EventTypeGeneral: {},
}

func (c CampusArea) Valid() bool {
	_, ok := campusAreas[c]
	return ok
}

func (p PaymentMethod) Valid() bool {
	_, ok := paymentMethods[p]
	return ok
}

func (t EateryType) Valid() bool {
	_, ok := eateryTypes[t]
	return ok
}

func (t EventType) Valid() bool {
	_, ok := eventTypes[t]
	return ok
}
