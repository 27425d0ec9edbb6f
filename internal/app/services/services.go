package services

// Services defined in this package:
// - AuthService: credential check per role and token issuance
// - StudentService: enrollment lifecycle and profile updates
// - TeacherService: taught-course rosters, grading, course analysis
// - CounselorService: class-level grade listings and reports
// - AdminService: reference-data CRUD, enrollment report, role changes
