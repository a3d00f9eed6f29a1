package fit

// Sport is the FIT "sport" enumeration, values copied from Profile.xlsx in
// FIT SDK 21.158.
type Sport uint8

const (
	SportGeneric Sport = 0
	SportRunning Sport = 1
	SportCycling Sport = 2
	SportTransition Sport = 3
	SportFitnessEquipment Sport = 4
	SportSwimming Sport = 5
	SportBasketball Sport = 6
	SportSoccer Sport = 7
	SportTennis Sport = 8
	SportAmericanFootball Sport = 9
	SportTraining Sport = 10
	SportWalking Sport = 11
	SportCrossCountrySkiing Sport = 12
	SportAlpineSkiing Sport = 13
	SportSnowboarding Sport = 14
	SportRowing Sport = 15
	SportMountaineering Sport = 16
	SportHiking Sport = 17
	SportMultisport Sport = 18
	SportPaddling Sport = 19
	SportFlying Sport = 20
	SportEBiking Sport = 21
	SportMotorcycling Sport = 22
	SportBoating Sport = 23
	SportDriving Sport = 24
	SportGolf Sport = 25
	SportHangGliding Sport = 26
	SportHorsebackRiding Sport = 27
	SportHunting Sport = 28
	SportFishing Sport = 29
	SportInlineSkating Sport = 30
	SportRockClimbing Sport = 31
	SportSailing Sport = 32
	SportIceSkating Sport = 33
	SportSkyDiving Sport = 34
	SportSnowshoeing Sport = 35
	SportSnowmobiling Sport = 36
)

// CoursePointType is the FIT "course_point" type enumeration, values copied
// from Profile.xlsx in FIT SDK 21.158. Value 26 is reserved/unused upstream.
type CoursePointType uint8

const (
	CoursePointGeneric CoursePointType = 0
	CoursePointSummit CoursePointType = 1
	CoursePointValley CoursePointType = 2
	CoursePointWater CoursePointType = 3
	CoursePointFood CoursePointType = 4
	CoursePointDanger CoursePointType = 5
	CoursePointLeft CoursePointType = 6
	CoursePointRight CoursePointType = 7
	CoursePointStraight CoursePointType = 8
	CoursePointFirstAid CoursePointType = 9
	CoursePointFourthCategory CoursePointType = 10
	CoursePointThirdCategory CoursePointType = 11
	CoursePointSecondCategory CoursePointType = 12
	CoursePointFirstCategory CoursePointType = 13
	CoursePointHorsCategory CoursePointType = 14
	CoursePointSprint CoursePointType = 15
	CoursePointLeftFork CoursePointType = 16
	CoursePointRightFork CoursePointType = 17
	CoursePointMiddleFork CoursePointType = 18
	CoursePointSlightLeft CoursePointType = 19
	CoursePointSharpLeft CoursePointType = 20
	CoursePointSlightRight CoursePointType = 21
	CoursePointSharpRight CoursePointType = 22
	CoursePointUTurn CoursePointType = 23
	CoursePointSegmentStart CoursePointType = 24
	CoursePointSegmentEnd CoursePointType = 25
	// 26 is reserved in the upstream profile.
	CoursePointCampsite CoursePointType = 27
	CoursePointAidStation CoursePointType = 28
	CoursePointRestArea CoursePointType = 29
	CoursePointGeneralDistance CoursePointType = 30
	CoursePointService CoursePointType = 31
	CoursePointEnergyGel CoursePointType = 32
	CoursePointSportsDrink CoursePointType = 33
	CoursePointMileMarker CoursePointType = 34
	CoursePointCheckpoint CoursePointType = 35
	CoursePointShelter CoursePointType = 36
	CoursePointMeetingSpot CoursePointType = 37
	CoursePointOverlook CoursePointType = 38
	CoursePointToilet CoursePointType = 39
	CoursePointShower CoursePointType = 40
	CoursePointGear CoursePointType = 41
	CoursePointSharpCurve CoursePointType = 42
	CoursePointSteepIncline CoursePointType = 43
	CoursePointTunnel CoursePointType = 44
	CoursePointBridge CoursePointType = 45
	CoursePointObstacle CoursePointType = 46
	CoursePointCrossing CoursePointType = 47
	CoursePointStore CoursePointType = 48
	CoursePointTransition CoursePointType = 49
	CoursePointNavaid CoursePointType = 50
	CoursePointTransport CoursePointType = 51
	CoursePointAlert CoursePointType = 52
	CoursePointInfo CoursePointType = 53
)

type fileType uint8

const fileTypeCourse fileType = 6

type fileManufacturer uint16

const fileManufacturerDevelopment fileManufacturer = 255

type globalMessage uint16

const (
	globalMessageFileId       globalMessage = 0
	globalMessageLap          globalMessage = 19
	globalMessageRecord       globalMessage = 20
	globalMessageEvent        globalMessage = 21
	globalMessageCourse       globalMessage = 31
	globalMessageCoursePoint  globalMessage = 32
	globalMessageFileCreator  globalMessage = 49
)

type event uint8

const eventTimer event = 0

type eventType uint8

const (
	eventTypeStart eventType = 0
	eventTypeStop  eventType = 1
)
